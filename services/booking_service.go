package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"grooming-service-server/models"
)

// BookingService owns the booking state machine, the cancellation-window
// rule and the notifications triggered by status transitions.
type BookingService struct {
	db           *gorm.DB
	notifier     Notifier
	cancelWindow time.Duration
	now          func() time.Time
}

// NewBookingService creates a booking service. cancelWindowMinutes bounds
// self-service cancellation, measured from booking creation.
func NewBookingService(db *gorm.DB, notifier Notifier, cancelWindowMinutes int) *BookingService {
	if cancelWindowMinutes <= 0 {
		cancelWindowMinutes = 30
	}
	return &BookingService{
		db:           db,
		notifier:     notifier,
		cancelWindow: time.Duration(cancelWindowMinutes) * time.Minute,
		now:          time.Now,
	}
}

// SetClock overrides the service's notion of now. Used by tests.
func (s *BookingService) SetClock(now func() time.Time) {
	s.now = now
}

// Create validates the request against the service catalog, snapshots the
// service name and price, and persists a pending booking. The new_booking
// notification is best effort and never fails creation.
func (s *BookingService) Create(req models.BookingCreateRequest) (*models.Booking, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"address", req.Address},
		{"service", req.Service},
		{"date", req.Date},
		{"time", req.Time},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, &ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	svc, ok := models.GetServiceByCode(req.Service)
	if !ok {
		return nil, &ValidationError{Field: "service", Reason: "invalid service selected"}
	}

	booking := models.Booking{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Service:     svc.Code,
		ServiceName: svc.Name,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Status:      models.BookingStatusPending,
		TotalPrice:  svc.Price,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	if result := s.notifier.Send(&booking, EventNewBooking); !result.Success {
		log.Printf("⚠️ new_booking notification incomplete for booking %s", booking.ID)
	}

	return &booking, nil
}

// UpdateStatus moves a booking along the state machine. Transitions not
// allowed by the graph are rejected; confirmed and completed transitions
// trigger customer notifications.
func (s *BookingService) UpdateStatus(id string, newStatus models.BookingStatus) (*models.Booking, error) {
	if !models.IsValidStatus(newStatus) {
		return nil, &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", newStatus)}
	}

	booking, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(newStatus) {
		return nil, &InvalidTransitionError{From: booking.Status, To: newStatus}
	}

	booking.Status = newStatus
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}

	switch newStatus {
	case models.BookingStatusConfirmed:
		s.notify(booking, EventConfirmed)
	case models.BookingStatusCompleted:
		s.notify(booking, EventCompleted)
	}

	return booking, nil
}

// Cancel applies the self-service cancellation rule: the booking must be
// pending or confirmed, and no more than the cancellation window may have
// passed since creation. The window is measured from creation, not from
// the scheduled service time.
func (s *BookingService) Cancel(id, reason string) (*models.Booking, error) {
	booking, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		return nil, &InvalidStateError{Status: booking.Status}
	}

	now := s.now()
	elapsedMinutes := int(now.Sub(booking.CreatedAt) / time.Minute)
	windowMinutes := int(s.cancelWindow / time.Minute)
	if elapsedMinutes > windowMinutes {
		return nil, &WindowExpiredError{ElapsedMinutes: elapsedMinutes, WindowMinutes: windowMinutes}
	}

	if reason == "" {
		reason = "Cancelled by customer"
	}
	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancelReason = &reason

	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}

	// Administrative audit record of the cancellation.
	log.Printf("🔔 BOOKING CANCELLATION: id=#%s customer=%s phone=%s reason=%q refund=Rp %d",
		shortID(booking.ID), booking.Name, booking.Phone, reason, booking.TotalPrice)

	s.notifier.NotifyAdmin(&models.AdminNotification{
		Type:         "booking_cancelled",
		BookingID:    booking.ID,
		CustomerName: booking.Name,
		ServiceName:  booking.ServiceName,
		Message:      fmt.Sprintf("❌ Booking #%s dibatalkan oleh %s: %s", shortID(booking.ID), booking.Name, reason),
	})

	return booking, nil
}

// FindByID fetches one booking by its identifier.
func (s *BookingService) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List returns bookings newest first, optionally filtered by status and by
// a substring match over phone, id and name.
func (s *BookingService) List(status models.BookingStatus, search string) ([]models.Booking, error) {
	query := s.db.Model(&models.Booking{}).Order("created_at DESC")

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("phone LIKE ? OR id LIKE ? OR name LIKE ?", pattern, pattern, pattern)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete removes a booking outright. This is an administrative escape
// hatch; the normal flow never deletes bookings.
func (s *BookingService) Delete(id string) error {
	result := s.db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// AttachPhoto stores the grooming result photo URL on the booking.
func (s *BookingService) AttachPhoto(id, url string) (*models.Booking, error) {
	booking, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	booking.PhotoURL = &url
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) notify(booking *models.Booking, event NotificationEvent) {
	if result := s.notifier.Send(booking, event); !result.Success {
		log.Printf("⚠️ %s notification incomplete for booking %s", event, booking.ID)
	}
}
