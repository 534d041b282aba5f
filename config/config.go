package config

import (
	"github.com/joho/godotenv"

	"github.com/kusheen8/BoooKit/logger"
)

// LoadEnv loads variables from a .env file if one exists. Missing files are
// fine in production where everything comes from the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.WarnLogger.Warn("No .env file found, using environment variables")
	}
}
