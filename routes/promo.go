package routes

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"grooming-service-server/database"
	"grooming-service-server/models"
	"grooming-service-server/services"
)

// getActivePromos handles GET /promos. Promo dates are stored as ISO
// YYYY-MM-DD strings, so the window check works lexically.
func getActivePromos(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var promos []models.Promo
	err := database.DB.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, today, today).
		Order("created_at DESC").
		Find(&promos).Error
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"promos":  promos,
		"count":   len(promos),
	})
}

// listAllPromos handles GET /admin/promos
func listAllPromos(c *gin.Context) {
	var promos []models.Promo
	if err := database.DB.Order("created_at DESC").Find(&promos).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"promos":  promos,
		"count":   len(promos),
	})
}

// createPromo handles POST /admin/promos
func createPromo(c *gin.Context) {
	var req models.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	promo := models.Promo{
		Title:              req.Title,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		IsActive:           req.IsActive,
		OriginalPrice:      req.OriginalPrice,
		DiscountedPrice:    req.DiscountedPrice,
		DiscountPercentage: req.DiscountPercentage,
	}

	if err := database.DB.Create(&promo).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	log.Printf("✅ Promo created: %s", promo.Title)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"promo":   promo,
	})
}

// updatePromo handles PUT /admin/promos/:id
func updatePromo(c *gin.Context) {
	var req models.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var promo models.Promo
	if err := database.DB.First(&promo, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			handleServiceError(c, services.ErrPromoNotFound)
			return
		}
		handleServiceError(c, err)
		return
	}

	promo.Title = req.Title
	promo.Description = req.Description
	promo.StartDate = req.StartDate
	promo.EndDate = req.EndDate
	promo.IsActive = req.IsActive
	promo.OriginalPrice = req.OriginalPrice
	promo.DiscountedPrice = req.DiscountedPrice
	promo.DiscountPercentage = req.DiscountPercentage

	if err := database.DB.Save(&promo).Error; err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"promo":   promo,
	})
}

// deletePromo handles DELETE /admin/promos/:id
func deletePromo(c *gin.Context) {
	result := database.DB.Delete(&models.Promo{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		handleServiceError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		handleServiceError(c, services.ErrPromoNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Promo deleted",
	})
}
