package repositories

import (
	"errors"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrResourceNotFound = errors.New("resource not found")

type ResourceRepository interface {
	Create(resource *models.Resource) error
	FindByID(id string) (*models.Resource, error)
	FindByCounselor(counselorID string) ([]models.Resource, error)
	FindByCounselorAndType(counselorID, resourceType string) ([]models.Resource, error)
	FindFeaturedByCounselor(counselorID string) ([]models.Resource, error)
	Update(resource *models.Resource) error
	Delete(resourceID string) error
	CountByCounselor(counselorID string) (int64, error)
	CountFeaturedByCounselor(counselorID string) (int64, error)
}

type ResourceRepositoryImpl struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &ResourceRepositoryImpl{db: db}
}

func (r *ResourceRepositoryImpl) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *ResourceRepositoryImpl) FindByID(id string) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return &resource, nil
}

func (r *ResourceRepositoryImpl) FindByCounselor(counselorID string) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("counselor_id = ?", counselorID).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepositoryImpl) FindByCounselorAndType(counselorID, resourceType string) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("counselor_id = ? AND type = ?", counselorID, resourceType).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepositoryImpl) FindFeaturedByCounselor(counselorID string) ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Where("counselor_id = ? AND is_featured = ?", counselorID, true).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepositoryImpl) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

func (r *ResourceRepositoryImpl) Delete(resourceID string) error {
	result := r.db.Delete(&models.Resource{}, "id = ?", resourceID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

func (r *ResourceRepositoryImpl) CountByCounselor(counselorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).
		Where("counselor_id = ?", counselorID).
		Count(&count).Error
	return count, err
}

func (r *ResourceRepositoryImpl) CountFeaturedByCounselor(counselorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).
		Where("counselor_id = ? AND is_featured = ?", counselorID, true).
		Count(&count).Error
	return count, err
}
