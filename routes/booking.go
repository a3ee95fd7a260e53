package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grooming-service-server/models"
)

// createBooking handles POST /bookings
func createBooking(c *gin.Context) {
	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bookingService.Create(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	log.Printf("✅ New booking created: #%s (%s, %s)", booking.ID, booking.Name, booking.ServiceName)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking berhasil dibuat! Kami akan segera menghubungi Anda.",
		"booking": booking.Summary(),
	})
}

// listBookings handles GET /bookings with optional status and search filters.
// A search that matches exactly one booking also returns it under the
// singular "booking" key so the lookup widget can use it directly.
func listBookings(c *gin.Context) {
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

	response := gin.H{
		"success":  true,
		"bookings": bookings,
		"count":    len(bookings),
	}
	if search != "" && len(bookings) == 1 {
		response["booking"] = bookings[0]
	}

	c.JSON(http.StatusOK, response)
}

// getBooking handles GET /bookings/:id
func getBooking(c *gin.Context) {
	booking, err := bookingService.FindByID(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": booking,
	})
}

// cancelBooking handles POST /bookings/:id/cancel
func cancelBooking(c *gin.Context) {
	var req models.BookingCancelRequest
	// Body is optional; an empty body means the default reason.
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bookingService.Cancel(c.Param("id"), req.CancelReason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking berhasil dibatalkan. Dana akan dikembalikan dalam 1-3 hari kerja.",
		"booking": booking,
	})
}

// getServiceCatalog handles GET /services
func getServiceCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": models.ListServices(),
	})
}
