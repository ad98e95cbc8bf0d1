package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Фронтенд обслуживается с другого origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Subscribe to change notifications
// @Description Upgrade to a websocket connection receiving disaster_updated, disaster_deleted, social_media_updated and resources_updated events.
// @Tags System
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}
	h.hub.Register(conn)
}
