package booking_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/shared_models"
	"github.com/kusheen8/BoooKit/utils"
)

// Booking captures one confirmed reservation together with its full price
// breakdown. The experience name is denormalized at creation time and is
// not updated if the catalog entry later changes. Bookings are never
// mutated or deleted.
type Booking struct {
	ID               uuid.UUID `json:"id"`
	ExperienceID     uuid.UUID `json:"experienceId"`
	ExperienceName   string    `json:"experienceName"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Quantity         int       `json:"quantity"`
	PromoCode        *string   `json:"promoCode,omitempty"`
	Subtotal         int       `json:"subtotal"`
	Taxes            int       `json:"taxes"`
	Discount         int       `json:"discount"`
	Total            int       `json:"total"`
	BookingReference string    `json:"bookingReference"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewBooking assembles a Booking struct with a fresh v7 identifier.
func NewBooking(experienceID uuid.UUID, experienceName, fullName, email, date, slotTime string, quantity int, promoCode *string, subtotal, taxes, discount, total int, reference string) (*Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for booking: %w", err)
	}
	return &Booking{
		ID:               id,
		ExperienceID:     experienceID,
		ExperienceName:   experienceName,
		FullName:         fullName,
		Email:            email,
		Date:             date,
		Time:             slotTime,
		Quantity:         quantity,
		PromoCode:        promoCode,
		Subtotal:         subtotal,
		Taxes:            taxes,
		Discount:         discount,
		Total:            total,
		BookingReference: reference,
		CreatedAt:        time.Now(),
	}, nil
}

const bookingColumns = `
	id, experience_id, experience_name, full_name, email, date, time,
	quantity, promo_code, subtotal, taxes, discount, total,
	booking_reference, created_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	booking := &Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.ExperienceID,
		&booking.ExperienceName,
		&booking.FullName,
		&booking.Email,
		&booking.Date,
		&booking.Time,
		&booking.Quantity,
		&booking.PromoCode,
		&booking.Subtotal,
		&booking.Taxes,
		&booking.Discount,
		&booking.Total,
		&booking.BookingReference,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// CreateBooking inserts a new booking record into the database.
func CreateBooking(ctx context.Context, db shared_models.DBTX, booking *Booking) (*Booking, error) {
	logger.InfoLogger.Infof("Attempting to create booking for experience %s", booking.ExperienceID)

	if booking.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUID: %w", err)
		}
		booking.ID = id
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO bookings (
			id, experience_id, experience_name, full_name, email, date, time,
			quantity, promo_code, subtotal, taxes, discount, total,
			booking_reference, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id`

	var insertedID uuid.UUID
	err := db.QueryRow(ctx, query,
		booking.ID, booking.ExperienceID, booking.ExperienceName,
		booking.FullName, booking.Email, booking.Date, booking.Time,
		booking.Quantity, booking.PromoCode, booking.Subtotal, booking.Taxes,
		booking.Discount, booking.Total, booking.BookingReference,
		booking.CreatedAt,
	).Scan(&insertedID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking for experience %s: %v", booking.ExperienceID, err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = insertedID
	logger.InfoLogger.Infof("Booking %s created with reference %s", booking.ID, booking.BookingReference)
	return booking, nil
}

// GetBookingByID fetches a booking record by its identifier.
func GetBookingByID(ctx context.Context, db shared_models.DBTX, bookingID uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(db.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WarnLogger.Warnf("Booking with ID %s not found", bookingID)
			return nil, utils.ErrBookingNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("database error fetching booking: %w", err)
	}
	return booking, nil
}

// GetAllBookings returns every booking, newest first.
func GetAllBookings(ctx context.Context, db shared_models.DBTX) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to scan booking row: %v", err)
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}

// CountBookingsForSlot counts existing bookings for one (experience, date,
// time) slot. The count is advisory: booking creation does not consult it,
// so two concurrent requests can both pass a caller-side check.
func CountBookingsForSlot(ctx context.Context, db shared_models.DBTX, experienceID uuid.UUID, date, slotTime string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bookings WHERE experience_id = $1 AND date = $2 AND time = $3`

	if err := db.QueryRow(ctx, query, experienceID, date, slotTime).Scan(&count); err != nil {
		logger.ErrorLogger.Errorf("Failed to count bookings for experience %s slot %s %s: %v", experienceID, date, slotTime, err)
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
