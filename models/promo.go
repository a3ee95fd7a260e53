package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promo is a promotional offer shown on the landing page while its date
// window is active.
type Promo struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:36"`
	Title              string    `json:"title" gorm:"size:255;not null"`
	Description        string    `json:"description" gorm:"type:text"`
	StartDate          string    `json:"start_date" gorm:"size:30;not null"`
	EndDate            string    `json:"end_date" gorm:"size:30;not null"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	OriginalPrice      int       `json:"original_price" gorm:"not null"`
	DiscountedPrice    *int      `json:"discounted_price"`
	DiscountPercentage *int      `json:"discount_percentage"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Promo model
func (Promo) TableName() string {
	return "promos"
}

// BeforeCreate is a GORM hook that assigns an opaque identifier
func (p *Promo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PromoRequest represents the request structure for creating/updating promos
type PromoRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
	StartDate          string `json:"start_date" binding:"required"`
	EndDate            string `json:"end_date" binding:"required"`
	IsActive           bool   `json:"is_active"`
	OriginalPrice      int    `json:"original_price" binding:"required"`
	DiscountedPrice    *int   `json:"discounted_price"`
	DiscountPercentage *int   `json:"discount_percentage"`
}
