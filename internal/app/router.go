// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogHandler "vendora-admin/internal/handlers/catalog"
	customerHandler "vendora-admin/internal/handlers/customers"
	notifyHandler "vendora-admin/internal/handlers/notification"
	orderHandler "vendora-admin/internal/handlers/orders"
	wsHandler "vendora-admin/internal/handlers/ws"
	"vendora-admin/internal/middleware"
)

type Handlers struct {
	CatalogHandler  *catalogHandler.CatalogHandler
	OrderHandler    *orderHandler.OrderHandler
	CustomerHandler *customerHandler.CustomerHandler
	NotifHandler    *notifyHandler.NotificationHandler
	WSHandler       *wsHandler.WSHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.Handle)

	// ==================== List Views ====================
	lists := api.Group("")
	lists.Use(h.AuthMiddleware.Auth())
	{
		lists.GET("/products", h.CatalogHandler.ListProducts)
		lists.GET("/categories", h.CatalogHandler.ListCategories)
		lists.GET("/orders", h.OrderHandler.ListOrders)
		lists.GET("/customers", h.CustomerHandler.ListCustomers)
	}

	// ==================== Notifications ====================
	notifications := api.Group("/notifications")
	notifications.Use(h.AuthMiddleware.Auth())
	{
		notifications.GET("", h.NotifHandler.List)
		notifications.GET("/count/unread", h.NotifHandler.UnreadCount)
		notifications.POST("/refresh", h.NotifHandler.Refresh)
		notifications.PUT("/:id/read", h.NotifHandler.MarkRead)
		notifications.PUT("/read-all", h.NotifHandler.MarkAllRead)
		notifications.DELETE("/:id", h.NotifHandler.Delete)
	}
}
