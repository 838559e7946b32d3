package repositories

import (
	"errors"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrPlanNotFound = errors.New("career plan not found")

type CareerPlanRepository interface {
	Create(plan *models.CareerPlan) error
	FindByID(id string) (*models.CareerPlan, error)
	FindByCounselor(counselorID string) ([]models.CareerPlan, error)
	FindByCounselorAndStatus(counselorID string, status models.PlanStatus) ([]models.CareerPlan, error)
	Update(plan *models.CareerPlan) error
	Delete(planID string) error
	CountByCounselor(counselorID string) (int64, error)
	CountByCounselorAndStatus(counselorID string, status models.PlanStatus) (int64, error)
}

type CareerPlanRepositoryImpl struct {
	db *gorm.DB
}

func NewCareerPlanRepository(db *gorm.DB) CareerPlanRepository {
	return &CareerPlanRepositoryImpl{db: db}
}

func (r *CareerPlanRepositoryImpl) Create(plan *models.CareerPlan) error {
	return r.db.Create(plan).Error
}

func (r *CareerPlanRepositoryImpl) FindByID(id string) (*models.CareerPlan, error) {
	var plan models.CareerPlan
	err := r.db.Preload("Student").First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *CareerPlanRepositoryImpl) FindByCounselor(counselorID string) ([]models.CareerPlan, error) {
	var plans []models.CareerPlan
	err := r.db.Preload("Student").
		Where("counselor_id = ?", counselorID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *CareerPlanRepositoryImpl) FindByCounselorAndStatus(counselorID string, status models.PlanStatus) ([]models.CareerPlan, error) {
	var plans []models.CareerPlan
	err := r.db.Preload("Student").
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *CareerPlanRepositoryImpl) Update(plan *models.CareerPlan) error {
	return r.db.Save(plan).Error
}

func (r *CareerPlanRepositoryImpl) Delete(planID string) error {
	result := r.db.Delete(&models.CareerPlan{}, "id = ?", planID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *CareerPlanRepositoryImpl) CountByCounselor(counselorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CareerPlan{}).
		Where("counselor_id = ?", counselorID).
		Count(&count).Error
	return count, err
}

func (r *CareerPlanRepositoryImpl) CountByCounselorAndStatus(counselorID string, status models.PlanStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.CareerPlan{}).
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Count(&count).Error
	return count, err
}
