package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/renoverde/recolhe-plus/internal/config"
	"github.com/renoverde/recolhe-plus/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	connectAttempts = 10
	connectDelay    = 3 * time.Second
)

// Connect opens the PostgreSQL connection with a bounded retry loop. The
// database container often comes up after the server; in-flight requests
// are never retried, only this initial dial.
func Connect(cfg *config.Config) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			if err = Ping(); err == nil {
				break
			}
		}
		slog.Warn("database connection failed", "attempt", attempt, "max", connectAttempts, "error", err)
		if attempt < connectAttempts {
			time.Sleep(connectDelay)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Pickup{},
		&models.Transaction{},
		&models.SystemLog{},
	)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
