package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a scheduled home-visit grooming request.
// ServiceName and TotalPrice are snapshots taken from the service catalog
// at creation time and are never recomputed afterwards.
type Booking struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	Name           string        `json:"name" gorm:"size:255;not null"`
	Phone          string        `json:"phone" gorm:"size:20;not null;index"`
	Address        string        `json:"address" gorm:"size:500;not null"`
	Service        string        `json:"service" gorm:"size:50;not null"`
	ServiceName    string        `json:"service_name" gorm:"size:100;not null"`
	Date           string        `json:"date" gorm:"size:20;not null"`
	Time           string        `json:"time" gorm:"size:20;not null"`
	Notes          string        `json:"notes" gorm:"size:1000"`
	Status         BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','confirmed','in-progress','completed','cancelled')"`
	TotalPrice     int           `json:"total_price" gorm:"not null"`
	PhotoURL       *string       `json:"photo_url,omitempty" gorm:"size:255"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
	CancelReason   *string       `json:"cancel_reason,omitempty" gorm:"size:500"`
	ReminderSentAt *time.Time    `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate is a GORM hook that assigns an opaque identifier
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}

// validTransitions is the booking state machine. Cancellation is terminal
// and only reachable from pending or confirmed; completed and cancelled
// have no outgoing transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusInProgress, BookingStatusCancelled},
	BookingStatusInProgress: {BookingStatusCompleted},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

// CanTransitionTo reports whether the state machine allows moving from the
// booking's current status to target.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, next := range validTransitions[b.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// IsValidStatus checks whether s is one of the five booking statuses.
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// BookingCreateRequest represents the request structure for creating a booking
type BookingCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

// BookingCancelRequest represents the request structure for cancelling a booking
type BookingCancelRequest struct {
	CancelReason string `json:"cancel_reason"`
}

// BookingStatusUpdateRequest represents the admin status-transition request
type BookingStatusUpdateRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}

// BookingSummary is the trimmed response returned right after creation
type BookingSummary struct {
	ID          string        `json:"id"`
	ServiceName string        `json:"service_name"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Status      BookingStatus `json:"status"`
	TotalPrice  int           `json:"total_price"`
}

// Summary returns the trimmed creation response for a booking.
func (b *Booking) Summary() BookingSummary {
	return BookingSummary{
		ID:          b.ID,
		ServiceName: b.ServiceName,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		TotalPrice:  b.TotalPrice,
	}
}
