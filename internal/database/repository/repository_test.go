package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mindwell/backend-go/internal/database/models"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.MoodEntry{},
		&models.Appointment{},
		&models.Counselor{},
		&models.Resource{},
		&models.Feedback{},
		&models.Report{},
		&models.Contact{},
	)
	require.NoError(t, err)

	return db
}

// day is a shorthand for a midnight-truncated date
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}
