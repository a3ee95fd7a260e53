package services

import (
	"fmt"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"grooming-service-server/database"
	"grooming-service-server/models"
)

// newTestDB opens an isolated in-memory database and runs the full
// migration set against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// stubNotifier records calls instead of delivering anything.
type stubNotifier struct {
	mu         sync.Mutex
	sent       []NotificationEvent
	adminNotes []*models.AdminNotification
}

func (n *stubNotifier) Send(booking *models.Booking, event NotificationEvent) NotificationResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, event)
	return NotificationResult{Success: true}
}

func (n *stubNotifier) NotifyAdmin(notification *models.AdminNotification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.adminNotes = append(n.adminNotes, notification)
}

func (n *stubNotifier) sentEvents() []NotificationEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]NotificationEvent(nil), n.sent...)
}

func (n *stubNotifier) adminNotifications() []*models.AdminNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*models.AdminNotification(nil), n.adminNotes...)
}

// validBookingRequest returns a request that passes all validation.
func validBookingRequest() models.BookingCreateRequest {
	return models.BookingCreateRequest{
		Name:    "Rina W.",
		Phone:   "081234567890",
		Address: "Jl. Melati No. 5, Bandung",
		Service: "mandi-kutu",
		Date:    "2026-09-01",
		Time:    "10:00",
		Notes:   "Kucing anggora, 2 ekor",
	}
}
