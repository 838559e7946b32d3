package repositories

import (
	"errors"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SavedJobRepository interface {
	Create(saved *models.SavedJob) error
	FindByCandidate(candidateID string) ([]models.SavedJob, error)
	ExistsByCandidateAndJob(candidateID, jobID string) (bool, error)
	Delete(candidateID, jobID string) error
	CountByCandidate(candidateID string) (int64, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Create(saved *models.SavedJob) error {
	return r.db.Create(saved).Error
}

func (r *SavedJobRepositoryImpl) FindByCandidate(candidateID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("saved_at DESC").
		Find(&saved).Error
	return saved, err
}

func (r *SavedJobRepositoryImpl) ExistsByCandidateAndJob(candidateID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *SavedJobRepositoryImpl) Delete(candidateID, jobID string) error {
	result := r.db.Delete(&models.SavedJob{}, "candidate_id = ? AND job_id = ?", candidateID, jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepositoryImpl) CountByCandidate(candidateID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).Error
	return count, err
}
