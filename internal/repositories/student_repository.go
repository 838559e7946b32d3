package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	Create(student *models.Student) error
	FindByID(id string) (*models.Student, error)
	FindByCounselor(counselorID string) ([]models.Student, error)
	FindByCounselorAndStatus(counselorID string, status models.StudentStatus) ([]models.Student, error)
	Update(student *models.Student) error
	TouchLastSession(studentID string, at time.Time) error
	CountByCounselor(counselorID string) (int64, error)
	CountByCounselorAndStatus(counselorID string, status models.StudentStatus) (int64, error)
}

type StudentRepositoryImpl struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &StudentRepositoryImpl{db: db}
}

func (r *StudentRepositoryImpl) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

func (r *StudentRepositoryImpl) FindByID(id string) (*models.Student, error) {
	var student models.Student
	err := r.db.Preload("User").First(&student, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepositoryImpl) FindByCounselor(counselorID string) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("User").
		Where("counselor_id = ?", counselorID).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}

func (r *StudentRepositoryImpl) FindByCounselorAndStatus(counselorID string, status models.StudentStatus) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Preload("User").
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Order("created_at DESC").
		Find(&students).Error
	return students, err
}

func (r *StudentRepositoryImpl) Update(student *models.Student) error {
	return r.db.Save(student).Error
}

func (r *StudentRepositoryImpl) TouchLastSession(studentID string, at time.Time) error {
	result := r.db.Model(&models.Student{}).
		Where("id = ?", studentID).
		Update("last_session_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepositoryImpl) CountByCounselor(counselorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).Where("counselor_id = ?", counselorID).Count(&count).Error
	return count, err
}

func (r *StudentRepositoryImpl) CountByCounselorAndStatus(counselorID string, status models.StudentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Count(&count).Error
	return count, err
}
