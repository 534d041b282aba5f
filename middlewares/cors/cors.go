package cors

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsMiddleware builds the CORS policy. CORS_ALLOWED_ORIGINS is a
// comma-separated origin list; when unset every origin is allowed, which
// also disables credentials per the CORS rules.
func CorsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
	cfg.MaxAge = 12 * time.Hour

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}

	return cors.New(cfg)
}
