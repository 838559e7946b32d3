package repositories

import (
	"errors"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	CreateTx(tx *gorm.DB, app *models.JobApplication) error
	FindByID(id string) (*models.JobApplication, error)
	FindByCandidate(candidateID string) ([]models.JobApplication, error)
	FindByCandidateAndJob(candidateID, jobID string) (*models.JobApplication, error)
	ExistsByCandidateAndJob(candidateID, jobID string) (bool, error)
	FindByRecruiter(recruiterID string) ([]models.JobApplication, error)
	FindByRecruiterAndStatus(recruiterID string, status models.ApplicationStatus) ([]models.JobApplication, error)
	UpdateStatus(applicationID string, status models.ApplicationStatus) error
	CountByCandidate(candidateID string) (int64, error)
	CountByCandidateAndStatus(candidateID string, statuses ...models.ApplicationStatus) (int64, error)
	CountByRecruiter(recruiterID string) (int64, error)
	CountByRecruiterAndStatus(recruiterID string, statuses ...models.ApplicationStatus) (int64, error)
	CountDistinctCandidatesByRecruiter(recruiterID string) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	return r.db.Create(app).Error
}

// CreateTx inserts inside an existing transaction. The apply workflow
// pairs this with the coin deduction so both commit or neither does.
func (r *ApplicationRepositoryImpl) CreateTx(tx *gorm.DB, app *models.JobApplication) error {
	return tx.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByCandidate(candidateID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByCandidateAndJob(candidateID, jobID string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Where("candidate_id = ? AND job_id = ?", candidateID, jobID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsByCandidateAndJob(candidateID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByRecruiter(recruiterID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Preload("Job").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		Order("job_applications.applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByRecruiterAndStatus(recruiterID string, status models.ApplicationStatus) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Preload("Job").
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.recruiter_id = ? AND job_applications.status = ?", recruiterID, status).
		Order("job_applications.applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(applicationID string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).
		Where("id = ?", applicationID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByCandidate(candidateID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByCandidateAndStatus(candidateID string, statuses ...models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("candidate_id = ? AND status IN ?", candidateID, statuses).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByRecruiter(recruiterID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByRecruiterAndStatus(recruiterID string, statuses ...models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.recruiter_id = ? AND job_applications.status IN ?", recruiterID, statuses).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountDistinctCandidatesByRecruiter(recruiterID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).
		Distinct("job_applications.candidate_id").
		Count(&count).Error
	return count, err
}
