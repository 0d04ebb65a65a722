package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the application logger: production JSON by default, development
// console output when APP_ENV=development.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
