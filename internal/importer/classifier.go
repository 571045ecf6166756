package importer

import (
	"errors"
	"path/filepath"
	"strings"
)

// Source is the extraction path an upload is routed to.
type Source string

const (
	SourceCSV   Source = "csv"
	SourceImage Source = "image"
)

var imageTypes = map[string]bool{
	"image/jpg":  true,
	"image/jpeg": true,
	"image/png":  true,
}

var extSources = map[string]Source{
	".csv":  SourceCSV,
	".jpg":  SourceImage,
	".jpeg": SourceImage,
	".png":  SourceImage,
}

// DetectSource routes an upload by declared media type, falling back to
// the file extension when the client sent no usable content type.
func DetectSource(contentType, filename string) (Source, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	if mediaType == "text/csv" {
		return SourceCSV, nil
	}
	if imageTypes[mediaType] {
		return SourceImage, nil
	}

	if source, ok := extSources[strings.ToLower(filepath.Ext(filename))]; ok {
		return source, nil
	}

	return "", errors.New("file type not allowed")
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if _, ok := extSources[ext]; !ok {
		return errors.New("file type not allowed")
	}

	return nil
}
