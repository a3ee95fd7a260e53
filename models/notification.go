package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminNotification is a persisted alert for the admin dashboard. Keeping
// these in the database means the feed survives restarts and is shared by
// all server instances.
type AdminNotification struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Type         string    `json:"type" gorm:"size:50;not null"` // new_rating, booking_cancelled, new_booking
	BookingID    string    `json:"booking_id" gorm:"size:36;index"`
	CustomerName string    `json:"customer_name" gorm:"size:255"`
	ServiceName  string    `json:"service_name" gorm:"size:100"`
	Message      string    `json:"message" gorm:"type:text;not null"`
	Read         bool      `json:"read" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the AdminNotification model
func (AdminNotification) TableName() string {
	return "admin_notifications"
}

// BeforeCreate is a GORM hook that assigns an opaque identifier
func (n *AdminNotification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// MarkNotificationReadRequest marks one admin notification as read
type MarkNotificationReadRequest struct {
	NotificationID string `json:"notification_id" binding:"required"`
}
