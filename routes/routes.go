package routes

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"grooming-service-server/config"
	"grooming-service-server/database"
	"grooming-service-server/middleware"
	"grooming-service-server/services"
	"grooming-service-server/utils"
	ws "grooming-service-server/websocket"
)

var (
	bookingService      *services.BookingService
	ratingService       *services.RatingService
	notificationService *services.NotificationService
)

// RegisterRoutes wires up services and registers all API routes.
func RegisterRoutes(router *gin.Engine, hub *ws.Hub) {
	notificationService = services.NewNotificationService(database.DB, hub)
	bookingService = services.NewBookingService(database.DB, notificationService,
		config.AppConfig.Booking.CancelWindowMinutes)
	ratingService = services.NewRatingService(database.DB, notificationService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Grooming Service Server is running",
			"time":    time.Now().UTC(),
		})
	})

	api := router.Group("/api/v1")
	{
		// Public customer-facing routes
		api.POST("/bookings", createBooking)
		api.GET("/bookings", listBookings)
		api.GET("/bookings/:id", getBooking)
		api.POST("/bookings/:id/cancel", cancelBooking)

		api.POST("/ratings", submitRating)
		api.GET("/ratings", getPublicRatings)

		api.GET("/services", getServiceCatalog)
		api.GET("/promos", getActivePromos)

		api.POST("/admin/login", AdminLogin)

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/auth/me", GetCurrentAdmin)
			admin.GET("/dashboard/stats", GetDashboardStats)

			admin.GET("/bookings", listBookingsForAdmin)
			admin.PATCH("/bookings/:id/status", updateBookingStatus)
			admin.DELETE("/bookings/:id", deleteBooking)
			admin.POST("/bookings/:id/photo", uploadBookingPhoto)

			admin.GET("/ratings", listRatingsForModeration)
			admin.POST("/ratings/:id/moderate", moderateRating)
			admin.DELETE("/ratings/:id", deleteRating)

			admin.GET("/notifications", getAdminNotifications)
			admin.PATCH("/notifications/read", markNotificationRead)

			admin.GET("/promos", listAllPromos)
			admin.POST("/promos", createPromo)
			admin.PUT("/promos/:id", updatePromo)
			admin.DELETE("/promos/:id", deletePromo)
		}

		// Live admin notification feed; the dashboard passes its JWT as a
		// query parameter since browsers cannot set websocket headers.
		feed := ws.NewAdminFeedHandler(hub)
		api.GET("/admin/ws/notifications", wsAuthMiddleware(), feed.HandleFeed)
	}
}

// wsAuthMiddleware validates the admin token from the query string for the
// websocket upgrade request.
func wsAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil || claims.Role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// handleServiceError translates service errors into HTTP responses.
func handleServiceError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		stateErr      *services.InvalidStateError
		windowErr     *services.WindowExpiredError
		transitionErr *services.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &stateErr),
		errors.As(err, &windowErr),
		errors.As(err, &transitionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Anda sudah memberikan rating untuk booking ini"})
	case errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, services.ErrRatingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
	case errors.Is(err, services.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
	case errors.Is(err, services.ErrPromoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo not found"})
	default:
		log.Printf("❌ Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
