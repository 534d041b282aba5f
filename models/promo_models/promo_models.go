package promo_models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/models/shared_models"
)

// Promo code kinds.
const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

const (
	promoCachePrefix = "promo:"
	promoCacheTTL    = 10 * time.Minute
)

// PromoCode is immutable reference data. Codes are stored upper-case.
type PromoCode struct {
	Code        string  `json:"code"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// Discount computes the rupee discount a promo grants on a subtotal.
// This is the single place the discount formula lives; promo validation
// and booking creation both call it.
func Discount(promo *PromoCode, subtotal int) int {
	if promo == nil {
		return 0
	}
	if promo.Type == TypePercentage {
		return shared_models.RoundHalfUp(float64(subtotal) * promo.Value / 100)
	}
	return shared_models.RoundHalfUp(promo.Value)
}

// NormalizeCode maps user input to the stored form of a promo code.
// Lookups and persisted booking records both go through it, so "save10"
// and "SAVE10" always refer to the same code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetPromoCode looks up a promo code case-insensitively. A missing code is
// not an error: it returns (nil, nil) and callers decide how to react.
// When a Redis client is provided, lookups go through a cache-aside layer.
func GetPromoCode(ctx context.Context, db shared_models.DBTX, rdb *redis.Client, code string) (*PromoCode, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, nil
	}

	if rdb != nil {
		cached, err := rdb.Get(ctx, promoCachePrefix+normalized).Result()
		if err == nil {
			var promo PromoCode
			if jsonErr := json.Unmarshal([]byte(cached), &promo); jsonErr == nil {
				return &promo, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.WarnLogger.Warnf("Redis error fetching promo %s, falling back to database: %v", normalized, err)
		}
	}

	promo := &PromoCode{}
	query := `
		SELECT code, type, value, description
		FROM promo_codes
		WHERE code = $1
	`
	err := db.QueryRow(ctx, query, normalized).Scan(
		&promo.Code,
		&promo.Type,
		&promo.Value,
		&promo.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.ErrorLogger.Errorf("Failed to fetch promo code %s: %v", normalized, err)
		return nil, fmt.Errorf("database error fetching promo code: %w", err)
	}

	if rdb != nil {
		if payload, jsonErr := json.Marshal(promo); jsonErr == nil {
			if err := rdb.Set(ctx, promoCachePrefix+normalized, payload, promoCacheTTL).Err(); err != nil {
				logger.WarnLogger.Warnf("Failed to cache promo %s: %v", normalized, err)
			}
		}
	}

	return promo, nil
}

// SeedPromoCodes inserts the reference promo codes if they are missing.
func SeedPromoCodes(ctx context.Context, db shared_models.DBTX) error {
	promos := []PromoCode{
		{Code: "SAVE10", Type: TypePercentage, Value: 10, Description: "10% off"},
		{Code: "WELCOME20", Type: TypePercentage, Value: 20, Description: "20% welcome discount"},
		{Code: "FLAT100", Type: TypeFixed, Value: 100, Description: "Flat ₹100 off"},
	}

	query := `
		INSERT INTO promo_codes (code, type, value, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING
	`

	for _, promo := range promos {
		if _, err := db.Exec(ctx, query, promo.Code, promo.Type, promo.Value, promo.Description); err != nil {
			return fmt.Errorf("failed to seed promo code %s: %w", promo.Code, err)
		}
	}

	logger.InfoLogger.Infof("Seeded %d promo codes", len(promos))
	return nil
}
