package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingStatus string

const (
	RatingStatusPending  RatingStatus = "pending"
	RatingStatusApproved RatingStatus = "approved"
	RatingStatusRejected RatingStatus = "rejected"
)

// Rating is a customer review tied to one booking. CustomerName and
// ServiceName are denormalized snapshots taken at submission time.
// A booking may have at most one rating in pending or approved state;
// a rejected rating does not block resubmission.
type Rating struct {
	ID           string       `json:"id" gorm:"primaryKey;size:36"`
	BookingID    string       `json:"booking_id" gorm:"size:36;not null;index"`
	CustomerName string       `json:"customer_name" gorm:"size:255;not null"`
	ServiceName  string       `json:"service_name" gorm:"size:100;not null"`
	Rating       int          `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment      string       `json:"comment" gorm:"type:text;not null"`
	Status       RatingStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','approved','rejected')"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}

// BeforeCreate is a GORM hook that assigns an opaque identifier
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = RatingStatusPending
	}
	return nil
}

// RatingSubmitRequest represents the request structure for submitting a rating
type RatingSubmitRequest struct {
	BookingID    string `json:"booking_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment" binding:"required"`
}

// RatingModerateRequest represents the moderation action for a rating
type RatingModerateRequest struct {
	Action string `json:"action" binding:"required"`
}
