package importer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Start an import (CSV or menu photo)
// --------------------------------------------------
func (h *Handler) Start(c *gin.Context) {
	restaurantID := c.Param("id")

	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	upload, err := h.service.StartImport(
		c.Request.Context(),
		restaurantID,
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, ErrMissingNameColumn) || errors.Is(err, ErrCSVParse) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, upload)
}

// --------------------------------------------------
// Preview parsed rows
// --------------------------------------------------
func (h *Handler) Preview(c *gin.Context) {
	restaurantID := c.Param("id")

	importID, err := strconv.Atoi(c.Param("import_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import id"})
		return
	}

	upload, err := h.service.GetPreview(c.Request.Context(), importID, restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, upload)
}

// --------------------------------------------------
// Commit previewed rows
// --------------------------------------------------
func (h *Handler) Commit(c *gin.Context) {
	restaurantID := c.Param("id")

	importID, err := strconv.Atoi(c.Param("import_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import id"})
		return
	}

	result, err := h.service.Commit(c.Request.Context(), importID, restaurantID)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		// Partial results let the caller resume the failed subset.
		status := http.StatusInternalServerError
		body := gin.H{"error": ErrImportFailed.Error()}
		if result != nil {
			body["committed"] = result.ItemIDs
			body["total"] = result.Total
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "menu imported successfully",
		"committed": result.ItemIDs,
		"total":     result.Total,
	})
}

// --------------------------------------------------
// Downloadable CSV template
// --------------------------------------------------
func (h *Handler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="`+TemplateFilename+`"`)
	c.Data(http.StatusOK, "text/csv", Template())
}
