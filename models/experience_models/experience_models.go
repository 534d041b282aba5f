package experience_models

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

// TimeSlot is one bookable time of day for an experience. Capacity is
// informational; bookings do not decrement it.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Capacity  int    `json:"capacity,omitempty"`
}

// Experience is a catalog entry. Entries are created at seed time and are
// immutable afterwards.
type Experience struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	Category       string     `json:"category"`
	Price          int        `json:"price"`
	ImageURL       string     `json:"imageUrl"`
	AvailableDates []string   `json:"availableDates"`
	TimeSlots      []TimeSlot `json:"timeSlots"`
	MinAge         *int       `json:"minAge,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

const experienceColumns = `
	id, name, description, location, category, price, image_url,
	available_dates, time_slots, min_age, duration, created_at`

func scanExperience(row pgx.Row) (*Experience, error) {
	exp := &Experience{}
	err := row.Scan(
		&exp.ID,
		&exp.Name,
		&exp.Description,
		&exp.Location,
		&exp.Category,
		&exp.Price,
		&exp.ImageURL,
		&exp.AvailableDates,
		&exp.TimeSlots,
		&exp.MinAge,
		&exp.Duration,
		&exp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// GetAllExperiences returns the catalog in insertion order. A non-empty
// search term filters with a case-insensitive substring match across name,
// description, location and category.
func GetAllExperiences(ctx context.Context, db shared_models.DBTX, search string) ([]Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences`
	var args []interface{}

	if search != "" {
		query += `
		WHERE name ILIKE $1 OR description ILIKE $1 OR location ILIKE $1 OR category ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch experiences: %v", err)
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer rows.Close()

	experiences := []Experience{}
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to scan experience row: %v", err)
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, *exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read experiences: %w", err)
	}

	return experiences, nil
}

// GetExperienceByID fetches one experience by its canonical identifier.
func GetExperienceByID(ctx context.Context, db shared_models.DBTX, id uuid.UUID) (*Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`

	exp, err := scanExperience(db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrExperienceNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch experience %s: %v", id, err)
		return nil, fmt.Errorf("database error fetching experience: %w", err)
	}
	return exp, nil
}

// CreateExperience inserts a catalog entry, assigning an id when missing.
func CreateExperience(ctx context.Context, db shared_models.DBTX, exp *Experience) (*Experience, error) {
	if exp.ID == uuid.Nil {
		exp.ID = uuid.New()
	}
	if exp.CreatedAt.IsZero() {
		exp.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO experiences (
			id, name, description, location, category, price, image_url,
			available_dates, time_slots, min_age, duration, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`

	_, err := db.Exec(ctx, query,
		exp.ID, exp.Name, exp.Description, exp.Location, exp.Category,
		exp.Price, exp.ImageURL, exp.AvailableDates, exp.TimeSlots,
		exp.MinAge, exp.Duration, exp.CreatedAt,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert experience %s: %v", exp.Name, err)
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return exp, nil
}
