package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows candidate-facing job searches. Empty fields are
// ignored.
type JobFilter struct {
	Query           string
	Location        string
	Type            string
	ExperienceLevel string
	CareerTrack     string
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindActive(limit, offset int) ([]models.Job, error)
	CountActive() (int64, error)
	Search(filter JobFilter, limit, offset int) ([]models.Job, int64, error)
	FindByRecruiter(recruiterID string) ([]models.Job, error)
	FindByRecruiterAndStatus(recruiterID string, status models.JobStatus) ([]models.Job, error)
	CountByRecruiter(recruiterID string) (int64, error)
	CountByRecruiterAndStatus(recruiterID string, status models.JobStatus) (int64, error)
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(jobID string) error
	IncrementViews(jobID string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindActive(limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("status = ?", models.JobStatusActive).
		Order("posted_date DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("status = ?", models.JobStatusActive).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) Search(filter JobFilter, limit, offset int) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.CareerTrack != "" {
		query = query.Where("career_track = ?", filter.CareerTrack)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Order("posted_date DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) FindByRecruiter(recruiterID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("recruiter_id = ?", recruiterID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByRecruiterAndStatus(recruiterID string, status models.JobStatus) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("recruiter_id = ? AND status = ?", recruiterID, status).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByRecruiter(recruiterID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("recruiter_id = ?", recruiterID).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountByRecruiterAndStatus(recruiterID string, status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("recruiter_id = ? AND status = ?", recruiterID, status).
		Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// IncrementViews bumps the counter in a single UPDATE so concurrent
// reads never lose increments.
func (r *JobRepositoryImpl) IncrementViews(jobID string) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
