package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"luvo_backend/database"
	"luvo_backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Username:     email[:min(len(email), 16)],
		Role:         &role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestJob(t *testing.T, db *gorm.DB, job models.Job) *models.Job {
	t.Helper()

	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if job.PostedDate == nil {
		now := time.Now()
		job.PostedDate = &now
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
