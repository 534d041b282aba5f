package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kusheen8/BoooKit/config"
	"github.com/kusheen8/BoooKit/config/db"
	redisclient "github.com/kusheen8/BoooKit/config/redis"
	"github.com/kusheen8/BoooKit/logger"
	"github.com/kusheen8/BoooKit/middlewares/cors"
	"github.com/kusheen8/BoooKit/models/experience_models"
	"github.com/kusheen8/BoooKit/models/promo_models"
	"github.com/kusheen8/BoooKit/routes"
	"github.com/kusheen8/BoooKit/utils/mail"
)

//go:embed templates/email/*
var embeddedEmailTemplates embed.FS

func init() {
	logger.InitLoggers()
	config.LoadEnv()
}

func main() {
	db.Connect()
	defer db.Close()
	defer redisclient.CloseRedis()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mail.InitTemplates(embeddedEmailTemplates)
	logger.InfoLogger.Info("Email templates initialized.")

	bootstrapCtx, bootstrapCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer bootstrapCancel()

	if err := db.EnsureSchema(bootstrapCtx, db.DB); err != nil {
		logger.ErrorLogger.Errorf("Failed to ensure database schema: %v", err)
		os.Exit(1)
	}
	if err := experience_models.SeedExperiences(bootstrapCtx, db.DB); err != nil {
		logger.ErrorLogger.Errorf("Failed to seed experiences: %v", err)
		os.Exit(1)
	}
	if err := promo_models.SeedPromoCodes(bootstrapCtx, db.DB); err != nil {
		logger.ErrorLogger.Errorf("Failed to seed promo codes: %v", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.CorsMiddleware())

	routes.RegisterExperienceRoutes(r)
	routes.RegisterBookingRoutes(r)
	routes.RegisterPromoRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "ok from booking service"})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		fmt.Printf("Server listening on :%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server failed to listen: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Printf("Server forced to shutdown: %v\n", err)
	}

	fmt.Println("Server exited gracefully.")
}
