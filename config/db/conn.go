package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kusheen8/BoooKit/logger"
)

var DB *pgxpool.Pool

func Connect() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.ErrorLogger.Error("DATABASE_URL not set")
		fmt.Println("DATABASE_URL not set")
		os.Exit(1)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.ErrorLogger.Errorf("Unable to parse DATABASE_URL: %v", err)
		os.Exit(1)
	}

	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		logger.ErrorLogger.Errorf("Database connection error: %v", err)
		fmt.Println("Database connection error:", err)
		os.Exit(1)
	}

	// Ping asynchronously so a cold database does not block startup
	go func() {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pingCancel()

		if err := pool.Ping(pingCtx); err != nil {
			logger.WarnLogger.Warnf("Database cold start or unreachable: %v", err)
		} else {
			logger.InfoLogger.Infof("Database ready (ping ok in %v)", time.Since(start))
		}
	}()

	DB = pool
	logger.InfoLogger.Info("Connected to PostgreSQL pool (async ping).")
}

// EnsureSchema creates the tables the service needs if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS experiences (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			price INTEGER NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			available_dates TEXT[] NOT NULL DEFAULT '{}',
			time_slots JSONB NOT NULL DEFAULT '[]',
			min_age INTEGER,
			duration TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			experience_id UUID NOT NULL,
			experience_name TEXT NOT NULL,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			promo_code TEXT,
			subtotal INTEGER NOT NULL,
			taxes INTEGER NOT NULL,
			discount INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL,
			booking_reference TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_slot ON bookings (experience_id, date, time)`,
		`CREATE TABLE IF NOT EXISTS promo_codes (
			code TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			value DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
		logger.InfoLogger.Info("Disconnected from PostgreSQL.")
	}
}
