package database

import (
	"log"

	"github.com/trailnepal/marketplace/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Guide{},
		&models.Destination{},
		&models.Tour{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial index: the unread badge is polled on every page load
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_notifications_unread
		ON notifications (recipient_id)
		WHERE read = false
	`)

	return db
}
