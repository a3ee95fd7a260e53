package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"grooming-service-server/models"
	"grooming-service-server/services"
)

// ReminderJob periodically reminds customers with a confirmed booking
// scheduled for today. Each booking is reminded at most once, tracked via
// ReminderSentAt.
type ReminderJob struct {
	db       *gorm.DB
	notifier services.Notifier
	interval time.Duration
	stopChan chan struct{}
}

// NewReminderJob creates a reminder job that scans every interval.
func NewReminderJob(db *gorm.DB, notifier services.Notifier, interval time.Duration) *ReminderJob {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &ReminderJob{
		db:       db,
		notifier: notifier,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the periodic scan in its own goroutine.
func (j *ReminderJob) Start() {
	log.Printf("⏰ Reminder job started (interval: %v)", j.interval)

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		// Run once on startup so a restart does not skip today's batch.
		j.RunOnce()

		for {
			select {
			case <-ticker.C:
				j.RunOnce()
			case <-j.stopChan:
				log.Println("⏰ Reminder job stopped")
				return
			}
		}
	}()
}

// Stop terminates the job loop.
func (j *ReminderJob) Stop() {
	close(j.stopChan)
}

// RunOnce sends reminders for today's confirmed bookings that have not
// been reminded yet.
func (j *ReminderJob) RunOnce() {
	today := time.Now().Format("2006-01-02")

	var bookings []models.Booking
	err := j.db.
		Where("status = ? AND date = ? AND reminder_sent_at IS NULL", models.BookingStatusConfirmed, today).
		Find(&bookings).Error
	if err != nil {
		log.Printf("❌ Reminder scan failed: %v", err)
		return
	}

	for i := range bookings {
		booking := &bookings[i]

		if result := j.notifier.Send(booking, services.EventReminder); !result.Success {
			log.Printf("⚠️ Reminder incomplete for booking %s, will retry next scan", booking.ID)
			continue
		}

		now := time.Now()
		if err := j.db.Model(booking).Update("reminder_sent_at", now).Error; err != nil {
			log.Printf("❌ Failed to stamp reminder for booking %s: %v", booking.ID, err)
			continue
		}

		log.Printf("⏰ Reminder sent for booking #%s (%s at %s)", booking.ID, booking.Name, booking.Time)
	}
}
