package realtime

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// Serve upgrades the request and keeps the connection registered until
// the client goes away. Inbound messages are ignored; the socket is a
// one-way event feed.
func (h *Handler) Serve(c *gin.Context) {
	restaurantID := c.Param("id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WS_UPGRADE_FAILED restaurant=%s err=%v", restaurantID, err)
		return
	}

	h.hub.Register(restaurantID, conn)
	defer h.hub.Unregister(restaurantID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
