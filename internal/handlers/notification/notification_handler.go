// internal/handlers/notification/notification_handler.go
package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	notifdomain "vendora-admin/internal/domain/notification"
	"vendora-admin/internal/pkg/response"
	notifservice "vendora-admin/internal/service/notification"
)

type NotificationHandler struct {
	center *notifservice.Center
	logger *zap.Logger
}

func NewNotificationHandler(center *notifservice.Center, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		center: center,
		logger: logger,
	}
}

// List returns the cached notifications in canonical order plus
// aggregate counts. The cache is served as-is; Refresh is the explicit
// resync path.
func (h *NotificationHandler) List(c *gin.Context) {
	records := h.center.Records()

	response.Success(c, http.StatusOK, "notifications retrieved", notifdomain.ListResponse{
		Notifications: records,
		Summary:       h.center.Summary(),
	})
}

// UnreadCount serves the badge number on its own for cheap polling.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	response.Success(c, http.StatusOK, "unread count retrieved", gin.H{
		"unreadCount": h.center.UnreadCount(),
	})
}

// Refresh pulls the authoritative list from the upstream API and
// replaces the cache with it.
func (h *NotificationHandler) Refresh(c *gin.Context) {
	if err := h.center.Refresh(c.Request.Context()); err != nil {
		response.UpstreamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "notifications refreshed", notifdomain.ListResponse{
		Notifications: h.center.Records(),
		Summary:       h.center.Summary(),
	})
}

// MarkRead flips one notification to read. The flip is optimistic; a
// failed upstream confirmation rolls it back and surfaces the error.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.ValidationError(c, "notification id is required", nil)
		return
	}

	if err := h.center.MarkRead(c.Request.Context(), id); err != nil {
		h.logger.Warn("mark-read rolled back", zap.String("id", id), zap.Error(err))
		response.UpstreamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "notification marked as read", gin.H{
		"unreadCount": h.center.UnreadCount(),
	})
}

// MarkAllRead flips every cached notification to read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.center.MarkAllRead(c.Request.Context()); err != nil {
		h.logger.Warn("mark-all-read rolled back", zap.Error(err))
		response.UpstreamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "all notifications marked as read", gin.H{
		"unreadCount": h.center.UnreadCount(),
	})
}

// Delete removes one notification.
func (h *NotificationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.ValidationError(c, "notification id is required", nil)
		return
	}

	if err := h.center.Delete(c.Request.Context(), id); err != nil {
		h.logger.Warn("delete rolled back", zap.String("id", id), zap.Error(err))
		response.UpstreamError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "notification deleted", gin.H{
		"unreadCount": h.center.UnreadCount(),
	})
}
