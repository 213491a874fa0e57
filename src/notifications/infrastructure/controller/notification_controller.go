package controller

import (
	"log"
	"net/http"

	"smartpos/src/notifications/infrastructure/feed"

	"github.com/gin-gonic/gin"
)

// NotificationController maneja las peticiones HTTP del panel de notificaciones
type NotificationController struct {
	feed *feed.Feed
}

// NewNotificationController crea una nueva instancia del controlador
func NewNotificationController(notifFeed *feed.Feed) *NotificationController {
	return &NotificationController{feed: notifFeed}
}

// RegisterRoutes registra las rutas del controlador
func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", c.ListNotifications)
		notifications.POST("/read", c.MarkAllRead)
	}

	log.Println("Rutas Notification disponibles:")
	log.Println("  GET    /api/v1/notifications")
	log.Println("  POST   /api/v1/notifications/read")
}

// ListNotifications retorna el feed con el contador de no leídas
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"items":        c.feed.List(),
		"unread_count": c.feed.UnreadCount(),
	})
}

// MarkAllRead resetea el contador de no leídas
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	c.feed.MarkAllRead()
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
