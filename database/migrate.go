package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"luvo_backend/internal/config"
	"luvo_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (once) a GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CoinAccount{},
		&models.CandidateProfile{},
		&models.Skill{},
		&models.Project{},
		&models.WorkExperience{},
		&models.Education{},
		&models.Job{},
		&models.JobApplication{},
		&models.SavedJob{},
		&models.Student{},
		&models.CounselingSession{},
		&models.CareerPlan{},
		&models.Resource{},
		&models.Interview{},
	)
}
