package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grooming-service-server/config"
	"grooming-service-server/database"
	"grooming-service-server/models"
	"grooming-service-server/utils"
)

// AdminLoginRequest represents the admin login payload
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles POST /admin/login
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin := config.AppConfig.Admin
	if req.Username != admin.Username || !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		log.Printf("🚫 Failed admin login attempt for %q from %s", req.Username, c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(req.Username, "admin")
	if err != nil {
		log.Printf("❌ Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("✅ Admin %s logged in", req.Username)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// GetCurrentAdmin handles GET /admin/auth/me
func GetCurrentAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": c.GetString("username"),
		"role":     "admin",
	})
}

// GetDashboardStats handles GET /admin/dashboard/stats
func GetDashboardStats(c *gin.Context) {
	db := database.DB

	var statusCounts []struct {
		Status models.BookingStatus `json:"status"`
		Count  int64                `json:"count"`
	}
	if err := db.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	bookings := gin.H{
		"pending":     int64(0),
		"confirmed":   int64(0),
		"in-progress": int64(0),
		"completed":   int64(0),
		"cancelled":   int64(0),
	}
	var totalBookings int64
	for _, sc := range statusCounts {
		bookings[string(sc.Status)] = sc.Count
		totalBookings += sc.Count
	}

	var pendingRatings int64
	if err := db.Model(&models.Rating{}).
		Where("status = ?", models.RatingStatusPending).
		Count(&pendingRatings).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	var avgRating float64
	db.Model(&models.Rating{}).
		Where("status = ?", models.RatingStatusApproved).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avgRating)

	var unreadNotifications int64
	if err := db.Model(&models.AdminNotification{}).
		Where("read = ?", false).
		Count(&unreadNotifications).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_bookings":       totalBookings,
			"bookings":             bookings,
			"pending_ratings":      pendingRatings,
			"average_rating":       avgRating,
			"unread_notifications": unreadNotifications,
		},
	})
}

// listBookingsForAdmin handles GET /admin/bookings. Same filters as the
// public listing but returns full records.
func listBookingsForAdmin(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	search := c.Query("search")

	if status != "" && !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	bookings, err := bookingService.List(status, search)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// updateBookingStatus handles PATCH /admin/bookings/:id/status
func updateBookingStatus(c *gin.Context) {
	var req models.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bookingService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	log.Printf("✅ Booking #%s status updated to %s by %s", booking.ID, booking.Status, c.GetString("username"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// deleteBooking handles DELETE /admin/bookings/:id
func deleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := bookingService.Delete(id); err != nil {
		handleServiceError(c, err)
		return
	}

	log.Printf("🗑️ Booking #%s deleted by %s", id, c.GetString("username"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted",
	})
}
