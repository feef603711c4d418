package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	activityBuffer    = 32
	activityKeepAlive = 25 * time.Second
)

// StreamActivity godoc
// @Summary      Live activity feed
// @Description  Server-Sent Events stream of ratings, rankings, catalog and account changes. Each event is named "activity" and carries a JSON object with type, at and payload.
// @Tags         admin-users
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200 {string} string "event stream"
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/activity/stream [get]
func (h *Handler) StreamActivity(c *gin.Context) {
	client := h.Hub.Subscribe(activityBuffer)
	defer h.Hub.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("ready", gin.H{"subscribers": h.Hub.Subscribers()})
	c.Writer.Flush()

	h.Log.Debug("Activity stream opened", zap.Uint("admin_id", currentUser(c).ID))

	keepAlive := time.NewTicker(activityKeepAlive)
	defer keepAlive.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			h.Log.Debug("Activity stream closed", zap.Uint("admin_id", currentUser(c).ID))
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("activity", string(msg))
			c.Writer.Flush()
		case <-keepAlive.C:
			// Comment lines keep proxies from closing an idle connection.
			if _, err := c.Writer.WriteString(": keep-alive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
