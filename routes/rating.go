package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grooming-service-server/models"
)

// submitRating handles POST /ratings
func submitRating(c *gin.Context) {
	var req models.RatingSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := ratingService.Submit(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Terima kasih! Rating Anda akan ditampilkan setelah dimoderasi.",
		"rating":  rating,
	})
}

// getPublicRatings handles GET /ratings. Only approved ratings are ever
// returned here; everything else lives behind the admin moderation view.
func getPublicRatings(c *gin.Context) {
	ratings, err := ratingService.ListPublic()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"ratings": ratings,
		"count":   len(ratings),
	})
}

// listRatingsForModeration handles GET /admin/ratings with an optional
// status filter.
func listRatingsForModeration(c *gin.Context) {
	status := models.RatingStatus(c.Query("status"))

	ratings, err := ratingService.ListForModeration(status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"ratings": ratings,
		"count":   len(ratings),
	})
}

// moderateRating handles POST /admin/ratings/:id/moderate
func moderateRating(c *gin.Context) {
	var req models.RatingModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := ratingService.Moderate(c.Param("id"), req.Action)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"rating":  rating,
	})
}

// deleteRating handles DELETE /admin/ratings/:id
func deleteRating(c *gin.Context) {
	if err := ratingService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rating deleted",
	})
}
