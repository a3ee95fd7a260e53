package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grooming-service-server/models"
)

// recordingBroadcaster captures broadcast payloads for assertions.
type recordingBroadcaster struct {
	mu       sync.Mutex
	payloads []interface{}
}

func (b *recordingBroadcaster) BroadcastJSON(v interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads = append(b.payloads, v)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.payloads)
}

func testBooking() *models.Booking {
	return &models.Booking{
		ID:          "11111111-2222-3333-4444-555555555555",
		Name:        "Rina W.",
		Phone:       "081234567890",
		ServiceName: "Mandi Anti Kutu",
		Date:        "2026-09-01",
		Time:        "10:00",
		TotalPrice:  75000,
	}
}

func TestSendBothChannelsSucceed(t *testing.T) {
	db := newTestDB(t)
	ns := NewNotificationService(db, nil)

	result := ns.Send(testBooking(), EventNewBooking)

	assert.True(t, result.Success)
	assert.NotEmpty(t, result.WhatsAppID)
	assert.NotEmpty(t, result.EmailID)
}

func TestSendReportsChannelFailureWithoutError(t *testing.T) {
	db := newTestDB(t)
	ns := NewNotificationService(db, nil)
	ns.whatsapp = func(*models.Booking, NotificationEvent) (string, error) {
		return "", errors.New("gateway timeout")
	}

	result := ns.Send(testBooking(), EventConfirmed)

	// One failed channel flips Success but the other still delivers.
	assert.False(t, result.Success)
	assert.Empty(t, result.WhatsAppID)
	assert.NotEmpty(t, result.EmailID)
}

func TestSendBothChannelsFail(t *testing.T) {
	db := newTestDB(t)
	ns := NewNotificationService(db, nil)
	failing := func(*models.Booking, NotificationEvent) (string, error) {
		return "", errors.New("unreachable")
	}
	ns.whatsapp = failing
	ns.email = failing

	result := ns.Send(testBooking(), EventCompleted)

	assert.False(t, result.Success)
	assert.Empty(t, result.WhatsAppID)
	assert.Empty(t, result.EmailID)
}

func TestSendUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	ns := NewNotificationService(db, nil)

	result := ns.Send(testBooking(), NotificationEvent("fireworks"))
	assert.False(t, result.Success)
}

func TestNotifyAdminPersistsAndBroadcasts(t *testing.T) {
	db := newTestDB(t)
	broadcaster := &recordingBroadcaster{}
	ns := NewNotificationService(db, broadcaster)

	ns.NotifyAdmin(&models.AdminNotification{
		Type:         "new_rating",
		BookingID:    "booking-1",
		CustomerName: "Rina W.",
		ServiceName:  "Mandi Anti Kutu",
		Message:      "⭐ Rating baru dari Rina W.",
	})

	var stored []models.AdminNotification
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "new_rating", stored[0].Type)
	assert.False(t, stored[0].Read)
	assert.NotEmpty(t, stored[0].ID)

	assert.Equal(t, 1, broadcaster.count())
}

func TestListAdminNotifications(t *testing.T) {
	db := newTestDB(t)
	ns := NewNotificationService(db, nil)

	ns.NotifyAdmin(&models.AdminNotification{Type: "new_booking", Message: "a"})
	ns.NotifyAdmin(&models.AdminNotification{Type: "booking_cancelled", Message: "b"})

	all, err := ns.ListAdminNotifications(false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, ns.MarkRead(all[0].ID))

	unread, err := ns.ListAdminNotifications(true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.NotEqual(t, all[0].ID, unread[0].ID)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	db := newTestDB(t)
	ns := NewNotificationService(db, nil)

	assert.ErrorIs(t, ns.MarkRead("missing-id"), ErrNotificationNotFound)
}
