package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"grooming-service-server/models"
)

const minCommentLength = 10

// RatingService owns rating submission constraints, the moderation
// workflow and the booking-completion linkage.
type RatingService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewRatingService creates a rating service.
func NewRatingService(db *gorm.DB, notifier Notifier) *RatingService {
	return &RatingService{db: db, notifier: notifier}
}

// Submit validates and stores a new rating in pending state.
//
// Side effect: a successful submission forces the linked booking to
// completed regardless of its prior status. Submitting a rating is treated
// as proof the service happened, so the booking is closed out even when an
// admin never advanced it past pending.
func (s *RatingService) Submit(req models.RatingSubmitRequest) (*models.Rating, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	comment := strings.TrimSpace(req.Comment)
	if utf8.RuneCountInString(comment) < minCommentLength {
		return nil, &ValidationError{Field: "comment", Reason: fmt.Sprintf("must be at least %d characters", minCommentLength)}
	}

	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	var active int64
	if err := s.db.Model(&models.Rating{}).
		Where("booking_id = ? AND status IN ?", req.BookingID,
			[]models.RatingStatus{models.RatingStatusPending, models.RatingStatusApproved}).
		Count(&active).Error; err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, ErrDuplicateRating
	}

	rating := models.Rating{
		BookingID:    booking.ID,
		CustomerName: req.CustomerName,
		ServiceName:  booking.ServiceName,
		Rating:       req.Rating,
		Comment:      comment,
		Status:       models.RatingStatusPending,
	}

	if err := s.db.Create(&rating).Error; err != nil {
		// The partial unique index on ratings(booking_id) catches the
		// race two concurrent submissions can slip through the check
		// above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	if booking.Status != models.BookingStatusCompleted {
		booking.Status = models.BookingStatusCompleted
		if err := s.db.Save(&booking).Error; err != nil {
			log.Printf("❌ Failed to mark booking %s completed after rating: %v", booking.ID, err)
		}
	}

	s.notifier.NotifyAdmin(&models.AdminNotification{
		Type:         "new_rating",
		BookingID:    booking.ID,
		CustomerName: rating.CustomerName,
		ServiceName:  rating.ServiceName,
		Message:      fmt.Sprintf("⭐ Rating baru dari %s untuk booking #%s", rating.CustomerName, shortID(booking.ID)),
	})

	return &rating, nil
}

// Moderate approves or rejects a rating. Approval makes it publicly
// visible; rejection frees the booking for resubmission.
func (s *RatingService) Moderate(id, action string) (*models.Rating, error) {
	if action != "approve" && action != "reject" {
		return nil, &ValidationError{Field: "action", Reason: "must be approve or reject"}
	}

	var rating models.Rating
	if err := s.db.First(&rating, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	if action == "approve" {
		rating.Status = models.RatingStatusApproved
	} else {
		rating.Status = models.RatingStatusRejected
	}

	if err := s.db.Save(&rating).Error; err != nil {
		// Re-approving a rejected rating collides with the uniqueness
		// index when the booking has since received a new active rating.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	log.Printf("✅ Rating %s %sd (booking #%s)", rating.ID, action, shortID(rating.BookingID))
	return &rating, nil
}

// Delete removes a rating unconditionally.
func (s *RatingService) Delete(id string) error {
	result := s.db.Delete(&models.Rating{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// ListPublic returns approved ratings newest first. This is the
// customer-facing testimonial feed.
func (s *RatingService) ListPublic() ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.Where("status = ?", models.RatingStatusApproved).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// ListForModeration returns all ratings newest first, optionally filtered
// by status. This is the admin view.
func (s *RatingService) ListForModeration(status models.RatingStatus) ([]models.Rating, error) {
	query := s.db.Model(&models.Rating{}).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var ratings []models.Rating
	err := query.Find(&ratings).Error
	return ratings, err
}
