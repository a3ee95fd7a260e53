package database

import (
	"log"

	"gorm.io/gorm"

	"grooming-service-server/models"
)

// SeedSampleData inserts a handful of completed bookings with approved
// ratings so a fresh install has testimonials to show. It is a no-op when
// bookings already exist.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	bookings := []models.Booking{
		{
			Name:        "John Doe",
			Phone:       "08123456789",
			Address:     "Jl. Sudirman No. 123, Jakarta Pusat",
			Service:     "mandi-biasa",
			ServiceName: "Mandi Biasa",
			Date:        "2024-01-15",
			Time:        "10:00",
			Notes:       "Kucing saya agak takut dengan orang asing",
			Status:      models.BookingStatusCompleted,
			TotalPrice:  50000,
		},
		{
			Name:        "Sarah P.",
			Phone:       "08123456788",
			Address:     "Jl. Thamrin No. 456, Jakarta Selatan",
			Service:     "mandi-kutu",
			ServiceName: "Mandi Anti Kutu",
			Date:        "2024-01-16",
			Time:        "14:00",
			Notes:       "Mohon treatment extra untuk kutu",
			Status:      models.BookingStatusCompleted,
			TotalPrice:  75000,
		},
		{
			Name:        "Budi S.",
			Phone:       "08123456787",
			Address:     "Jl. Gatot Subroto No. 789, Jakarta Barat",
			Service:     "mandi-grooming",
			ServiceName: "Mandi + Grooming Lengkap",
			Date:        "2024-01-17",
			Time:        "09:00",
			Notes:       "Kucing persia, bulu panjang",
			Status:      models.BookingStatusCompleted,
			TotalPrice:  99000,
		},
	}

	comments := []string{
		"Pelayanan sangat memuaskan! Petugasnya ramah dan sabar sama kucing saya. Hasil groomingnya rapi banget.",
		"Praktis banget, ga perlu repot bawa kucing ke salon. Harganya worth it untuk hasil sebagus ini.",
		"Kucing saya jadi wangi dan bersih. Petugasnya profesional dan tepat waktu. Recommended!",
	}

	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			return err
		}

		rating := models.Rating{
			BookingID:    bookings[i].ID,
			CustomerName: bookings[i].Name,
			ServiceName:  bookings[i].ServiceName,
			Rating:       5,
			Comment:      comments[i],
			Status:       models.RatingStatusApproved,
		}
		if err := db.Create(&rating).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d sample bookings with ratings", len(bookings))
	return nil
}
