package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id string) (*models.Interview, error)
	FindByRecruiter(recruiterID string) ([]models.Interview, error)
	FindByRecruiterAndStatus(recruiterID string, status models.InterviewStatus) ([]models.Interview, error)
	FindUpcomingByRecruiter(recruiterID string, after time.Time) ([]models.Interview, error)
	Update(interview *models.Interview) error
	Delete(interviewID string) error
	CountUpcomingByRecruiter(recruiterID string, after time.Time) (int64, error)
	CountUpcomingByCandidate(candidateID string, after time.Time) (int64, error)
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) Create(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) FindByID(id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.Preload("Application").Preload("Application.Job").
		First(&interview, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) FindByRecruiter(recruiterID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.Preload("Application").Preload("Application.Job").
		Where("recruiter_id = ?", recruiterID).
		Order("scheduled_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) FindByRecruiterAndStatus(recruiterID string, status models.InterviewStatus) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.Preload("Application").Preload("Application.Job").
		Where("recruiter_id = ? AND status = ?", recruiterID, status).
		Order("scheduled_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) FindUpcomingByRecruiter(recruiterID string, after time.Time) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.Preload("Application").Preload("Application.Job").
		Where("recruiter_id = ? AND status = ? AND scheduled_at > ?",
			recruiterID, models.InterviewStatusScheduled, after).
		Order("scheduled_at ASC").
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) Update(interview *models.Interview) error {
	return r.db.Save(interview).Error
}

func (r *InterviewRepositoryImpl) Delete(interviewID string) error {
	result := r.db.Delete(&models.Interview{}, "id = ?", interviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) CountUpcomingByRecruiter(recruiterID string, after time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Interview{}).
		Where("recruiter_id = ? AND status = ? AND scheduled_at > ?",
			recruiterID, models.InterviewStatusScheduled, after).
		Count(&count).Error
	return count, err
}

func (r *InterviewRepositoryImpl) CountUpcomingByCandidate(candidateID string, after time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Interview{}).
		Joins("JOIN job_applications ON job_applications.id = interviews.application_id").
		Where("job_applications.candidate_id = ? AND interviews.status = ? AND interviews.scheduled_at > ?",
			candidateID, models.InterviewStatusScheduled, after).
		Count(&count).Error
	return count, err
}
