package middlewares

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	redisclient "github.com/kusheen8/BoooKit/config/redis"
	"github.com/kusheen8/BoooKit/logger"
)

// NewRateLimiter builds a per-client-IP rate limiting middleware from a
// formatted rate like "10-M" or "100-H". The counters live in Redis when a
// client is available and fall back to an in-memory store otherwise.
func NewRateLimiter(formatted, routeID string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		logger.ErrorLogger.Errorf("Invalid rate %q for route %s: %v", formatted, routeID, err)
		return func(c *gin.Context) { c.Next() }
	}

	store := newStore(routeID)
	return ginmiddleware.NewMiddleware(limiter.New(store, rate))
}

func newStore(routeID string) limiter.Store {
	rdb, err := redisclient.GetRedisClient(context.Background())
	if err != nil {
		logger.WarnLogger.Warnf("Rate limiter for route %s using in-memory store: %v", routeID, err)
		return memorystore.NewStore()
	}

	store, err := redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix:   fmt.Sprintf("rate_limiter:%s", routeID),
		MaxRetry: 3,
	})
	if err != nil {
		logger.WarnLogger.Warnf("Failed to create Redis rate limiter store for route %s, using memory: %v", routeID, err)
		return memorystore.NewStore()
	}
	return store
}
