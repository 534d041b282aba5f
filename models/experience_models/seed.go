package experience_models

import (
	"context"
	"fmt"
	"time"

	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/shared_models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func defaultTimeSlots() []TimeSlot {
	return []TimeSlot{
		{Time: "6:00 AM", Available: true, Capacity: 8},
		{Time: "9:00 AM", Available: true, Capacity: 10},
		{Time: "12:00 PM", Available: true, Capacity: 6},
		{Time: "3:00 PM", Available: true, Capacity: 10},
		{Time: "6:00 PM", Available: true, Capacity: 8},
	}
}

// next 30 calendar days as ISO dates
func upcomingDates() []string {
	dates := make([]string, 0, 30)
	for i := 1; i <= 30; i++ {
		dates = append(dates, time.Now().AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

// SeedExperiences loads the initial catalog when the table is empty.
func SeedExperiences(ctx context.Context, db shared_models.DBTX) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count experiences: %w", err)
	}
	if count > 0 {
		logger.InfoLogger.Info("Experiences already exist, skipping seed.")
		return nil
	}

	dates := upcomingDates()
	slots := defaultTimeSlots()

	kayaking := func(image string) Experience {
		return Experience{
			Name:           "Kayaking",
			Description:    "Curated small-group experience. Certified guide. Safety first with gear included. Helmet and life jackets along with an expert will accompany you in kayaking.",
			Location:       "Udupi",
			Category:       "Udupi",
			Price:          999,
			ImageURL:       image,
			AvailableDates: dates,
			TimeSlots:      slots,
			MinAge:         intPtr(10),
			Duration:       strPtr("2 hours"),
		}
	}
	nandiHills := func(image string) Experience {
		return Experience{
			Name:           "Nandi Hills Sunrise",
			Description:    "Early morning trek to catch the breathtaking sunrise from Nandi Hills with a certified guide and refreshments.",
			Location:       "Bangalore",
			Category:       "Bangalore",
			Price:          899,
			ImageURL:       image,
			AvailableDates: dates,
			TimeSlots:      slots,
			MinAge:         intPtr(12),
			Duration:       strPtr("4 hours"),
		}
	}

	catalog := []Experience{
		kayaking("/images/experiences/kayaking.png"),
		kayaking("/images/experiences/Kayaking2.png"),
		kayaking("/images/experiences/KayaKing3.png"),
		kayaking("/images/experiences/KayaKing4.png"),
		kayaking("/images/experiences/Kayaking5.png"),
		nandiHills("/images/experiences/nandi-hills.jpg"),
		nandiHills("/images/experiences/nandi-hills2.png"),
		{
			Name:           "Coffee Trail",
			Description:    "Explore coffee plantations in Coorg and learn the process from bean to cup.",
			Location:       "Coorg",
			Category:       "Coorg",
			Price:          1299,
			ImageURL:       "/images/experiences/coffee-trail.jpg",
			AvailableDates: dates,
			TimeSlots:      slots,
			MinAge:         intPtr(10),
			Duration:       strPtr("3 hours"),
		},
		{
			Name:           "Boat Cruise",
			Description:    "Relaxing boat cruise in Goa with scenic views and refreshments included.",
			Location:       "Goa",
			Category:       "Goa",
			Price:          999,
			ImageURL:       "/images/experiences/boat-cruise.png",
			AvailableDates: dates,
			TimeSlots:      slots,
			MinAge:         intPtr(8),
			Duration:       strPtr("2 hours"),
		},
		{
			Name:           "Bungee Jumping",
			Description:    "Experience the ultimate adrenaline rush with professional supervision in Rishikesh.",
			Location:       "Rishikesh",
			Category:       "Rishikesh",
			Price:          3499,
			ImageURL:       "/images/experiences/bungee-jumping.png",
			AvailableDates: dates,
			TimeSlots:      slots,
			MinAge:         intPtr(18),
			Duration:       strPtr("1 hour"),
		},
	}

	for i := range catalog {
		// Stagger created_at so insertion order survives the seed loop.
		catalog[i].CreatedAt = time.Now().Add(time.Duration(i) * time.Millisecond)
		if _, err := CreateExperience(ctx, db, &catalog[i]); err != nil {
			return fmt.Errorf("failed to seed experience %q: %w", catalog[i].Name, err)
		}
	}

	logger.InfoLogger.Infof("Seeded %d experiences", len(catalog))
	return nil
}
