package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grooming-service-server/models"
)

// getAdminNotifications handles GET /admin/notifications. Pass
// unread_only=true to fetch only unread entries.
func getAdminNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread_only") == "true"

	notifications, err := notificationService.ListAdminNotifications(unreadOnly)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// markNotificationRead handles PATCH /admin/notifications/read
func markNotificationRead(c *gin.Context) {
	var req models.MarkNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := notificationService.MarkRead(req.NotificationID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
