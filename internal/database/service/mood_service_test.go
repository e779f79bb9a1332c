package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/database/service"
)

func setupMoodService(t *testing.T, now *time.Time) service.MoodService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MoodEntry{}))

	repo := repository.NewMoodRepository(db)
	return service.NewMoodServiceWithClock(repo, testLogger(), func() time.Time { return *now })
}

func TestMoodService_LogMood_SameDayConverges(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)
	svc := setupMoodService(t, &now)

	first, created, err := svc.LogMood(1, 4, "ok morning", []string{"study"})
	require.NoError(t, err)
	assert.True(t, created)

	// Later the same day
	now = now.Add(8 * time.Hour)
	second, created, err := svc.LogMood(1, 2, "exam went badly", []string{"exams"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	entries, err := svc.ListEntries(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Mood)
	assert.Equal(t, "exam went badly", entries[0].Notes)
}

func TestMoodService_LogMood_NewDayNewEntry(t *testing.T) {
	now := time.Date(2026, time.March, 10, 23, 50, 0, 0, time.Local)
	svc := setupMoodService(t, &now)

	_, created, err := svc.LogMood(1, 4, "", nil)
	require.NoError(t, err)
	require.True(t, created)

	// Just past midnight counts as a fresh day
	now = now.Add(15 * time.Minute)
	_, created, err = svc.LogMood(1, 3, "", nil)
	require.NoError(t, err)
	assert.True(t, created)

	entries, err := svc.ListEntries(1)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMoodService_LogMood_RejectsOutOfRange(t *testing.T) {
	now := time.Now()
	svc := setupMoodService(t, &now)

	for _, mood := range []int{0, 6, -1} {
		_, _, err := svc.LogMood(1, mood, "", nil)
		assert.ErrorIs(t, err, service.ErrInvalidMood)
	}

	entries, err := svc.ListEntries(1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
