package routes

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

const maxPhotoSize = 10 << 20 // 10 MB

// uploadBookingPhoto handles POST /admin/bookings/:id/photo. The groomer
// uploads an after-photo of the finished session; the secure URL is stored
// on the booking.
func uploadBookingPhoto(c *gin.Context) {
	bookingID := c.Param("id")

	// Fail fast before touching Cloudinary.
	if _, err := bookingService.FindByID(bookingID); err != nil {
		handleServiceError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo must be 10MB or smaller"})
		return
	}

	cld, err := cloudinary.New()
	if err != nil {
		log.Printf("❌ Cloudinary init failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Photo upload unavailable"})
		return
	}

	uploadResult, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		Folder:         "grooming-results",
		PublicID:       fmt.Sprintf("booking_%s", bookingID),
		Overwrite:      api.Bool(true),
		UniqueFilename: api.Bool(false),
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Cloudinary upload failed for booking %s: %v", bookingID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Photo upload failed"})
		return
	}

	booking, err := bookingService.AttachPhoto(bookingID, uploadResult.SecureURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	log.Printf("📸 Result photo attached to booking #%s", bookingID)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"photo_url": uploadResult.SecureURL,
		"booking":   booking,
	})
}
