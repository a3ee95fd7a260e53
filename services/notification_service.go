package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"grooming-service-server/models"
)

// NotificationEvent identifies the booking lifecycle event a notification
// is sent for.
type NotificationEvent string

const (
	EventNewBooking NotificationEvent = "new_booking"
	EventConfirmed  NotificationEvent = "confirmed"
	EventCompleted  NotificationEvent = "completed"
	EventReminder   NotificationEvent = "reminder"
)

// NotificationResult is the best-effort delivery outcome. Callers only act
// on Success for logging; a failed notification never fails the operation
// that triggered it.
type NotificationResult struct {
	Success    bool   `json:"success"`
	WhatsAppID string `json:"whatsapp_id,omitempty"`
	EmailID    string `json:"email_id,omitempty"`
}

// Notifier is the notification gateway consumed by the booking and rating
// services. Implementations must never block the caller on failure.
type Notifier interface {
	Send(booking *models.Booking, event NotificationEvent) NotificationResult
	NotifyAdmin(notification *models.AdminNotification)
}

// Broadcaster pushes admin notifications to connected dashboard clients.
type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// channelSender delivers one message over a single channel (WhatsApp or
// email). Split out so tests can inject failing senders.
type channelSender func(booking *models.Booking, event NotificationEvent) (string, error)

// NotificationService simulates the WhatsApp and email delivery channels.
// In production this would integrate with the WhatsApp Business API and an
// email provider; here the messages are written to the server log.
type NotificationService struct {
	db          *gorm.DB
	broadcaster Broadcaster
	whatsapp    channelSender
	email       channelSender
}

// NewNotificationService creates a notification service backed by db.
// broadcaster may be nil when no live feed is attached.
func NewNotificationService(db *gorm.DB, broadcaster Broadcaster) *NotificationService {
	ns := &NotificationService{db: db, broadcaster: broadcaster}
	ns.whatsapp = ns.sendWhatsApp
	ns.email = ns.sendEmail
	return ns
}

var whatsappMessages = map[NotificationEvent]string{
	EventNewBooking: "🐱 Pesanan Baru Cat Grooming! Hai %s, terima kasih telah memesan layanan %s pada %s %s. Total: Rp %d. Admin kami akan menghubungi Anda segera untuk konfirmasi.",
	EventConfirmed:  "✅ Pesanan Dikonfirmasi! Hai %s, layanan %s dijadwalkan %s %s. Petugas akan menghubungi Anda 1 jam sebelum datang.",
	EventCompleted:  "🎉 Layanan Selesai! Hai %s, terima kasih telah menggunakan layanan %s. Bantu kami dengan memberikan rating di website ya!",
	EventReminder:   "⏰ Pengingat Jadwal. Hai %s, ini pengingat untuk layanan %s hari ini pukul %s. Mohon siapkan kucing Anda!",
}

var emailSubjects = map[NotificationEvent]string{
	EventNewBooking: "Pesanan Baru - Cat Grooming Service",
	EventConfirmed:  "Pesanan Dikonfirmasi - Cat Grooming Service",
	EventCompleted:  "Layanan Selesai - Cat Grooming Service",
	EventReminder:   "Pengingat Jadwal - Cat Grooming Service",
}

// Send dispatches the WhatsApp and email channels concurrently and joins
// them with a non-failing aggregator: each failure is logged and swallowed
// so the triggering business operation always proceeds.
func (ns *NotificationService) Send(booking *models.Booking, event NotificationEvent) NotificationResult {
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		result     = NotificationResult{Success: true}
		dispatches = []struct {
			name string
			send channelSender
			dest *string
		}{
			{"whatsapp", ns.whatsapp, &result.WhatsAppID},
			{"email", ns.email, &result.EmailID},
		}
	)

	for _, d := range dispatches {
		wg.Add(1)
		go func(name string, send channelSender, dest *string) {
			defer wg.Done()
			id, err := send(booking, event)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("❌ %s notification failed for booking %s (%s): %v", name, booking.ID, event, err)
				result.Success = false
				return
			}
			*dest = id
		}(d.name, d.send, d.dest)
	}
	wg.Wait()

	return result
}

// sendWhatsApp simulates a WhatsApp Business API call by logging the message.
func (ns *NotificationService) sendWhatsApp(booking *models.Booking, event NotificationEvent) (string, error) {
	template, ok := whatsappMessages[event]
	if !ok {
		return "", fmt.Errorf("unknown notification event: %s", event)
	}

	var message string
	switch event {
	case EventNewBooking:
		message = fmt.Sprintf(template, booking.Name, booking.ServiceName, booking.Date, booking.Time, booking.TotalPrice)
	case EventConfirmed:
		message = fmt.Sprintf(template, booking.Name, booking.ServiceName, booking.Date, booking.Time)
	case EventReminder:
		message = fmt.Sprintf(template, booking.Name, booking.ServiceName, booking.Time)
	default:
		message = fmt.Sprintf(template, booking.Name, booking.ServiceName)
	}

	log.Printf("📱 WhatsApp notification to %s: %s", booking.Phone, message)
	return fmt.Sprintf("WA_%d", time.Now().UnixNano()), nil
}

// sendEmail simulates an email provider call by logging the subject.
func (ns *NotificationService) sendEmail(booking *models.Booking, event NotificationEvent) (string, error) {
	subject, ok := emailSubjects[event]
	if !ok {
		return "", fmt.Errorf("unknown notification event: %s", event)
	}

	log.Printf("📧 Email notification to %s@example.com: %s (booking #%s)", booking.Phone, subject, shortID(booking.ID))
	return fmt.Sprintf("EMAIL_%d", time.Now().UnixNano()), nil
}

// NotifyAdmin persists an admin notification and pushes it to the live
// dashboard feed. Best effort: failures are logged and swallowed.
func (ns *NotificationService) NotifyAdmin(notification *models.AdminNotification) {
	if notification.Message == "" {
		notification.Message = fmt.Sprintf("Notifikasi: %s", notification.Type)
	}

	if err := ns.db.Create(notification).Error; err != nil {
		log.Printf("❌ Failed to persist admin notification (%s): %v", notification.Type, err)
		return
	}

	log.Printf("🔔 Admin notification created: [%s] %s", notification.Type, notification.Message)

	if ns.broadcaster != nil {
		ns.broadcaster.BroadcastJSON(notification)
	}
}

// ListAdminNotifications returns admin notifications newest first. With
// unreadOnly set, read entries are filtered out.
func (ns *NotificationService) ListAdminNotifications(unreadOnly bool) ([]models.AdminNotification, error) {
	query := ns.db.Model(&models.AdminNotification{}).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []models.AdminNotification
	err := query.Find(&notifications).Error
	return notifications, err
}

// MarkRead flags one admin notification as read.
func (ns *NotificationService) MarkRead(id string) error {
	result := ns.db.Model(&models.AdminNotification{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// shortID trims an opaque identifier to its last six characters for display.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
