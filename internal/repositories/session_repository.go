package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var ErrSessionNotFound = errors.New("counseling session not found")

type SessionRepository interface {
	Create(session *models.CounselingSession) error
	FindByID(id string) (*models.CounselingSession, error)
	FindByCounselor(counselorID string) ([]models.CounselingSession, error)
	FindByCounselorAndStatus(counselorID string, status models.SessionStatus) ([]models.CounselingSession, error)
	Update(session *models.CounselingSession) error
	Delete(sessionID string) error
	CountByCounselor(counselorID string) (int64, error)
	CountByCounselorAndStatus(counselorID string, status models.SessionStatus) (int64, error)
	CountUpcomingByCounselor(counselorID string, after time.Time) (int64, error)
}

type SessionRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

func (r *SessionRepositoryImpl) Create(session *models.CounselingSession) error {
	return r.db.Create(session).Error
}

func (r *SessionRepositoryImpl) FindByID(id string) (*models.CounselingSession, error) {
	var session models.CounselingSession
	err := r.db.Preload("Student").First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepositoryImpl) FindByCounselor(counselorID string) ([]models.CounselingSession, error) {
	var sessions []models.CounselingSession
	err := r.db.Preload("Student").
		Where("counselor_id = ?", counselorID).
		Order("scheduled_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) FindByCounselorAndStatus(counselorID string, status models.SessionStatus) ([]models.CounselingSession, error) {
	var sessions []models.CounselingSession
	err := r.db.Preload("Student").
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Order("scheduled_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepositoryImpl) Update(session *models.CounselingSession) error {
	return r.db.Save(session).Error
}

func (r *SessionRepositoryImpl) Delete(sessionID string) error {
	result := r.db.Delete(&models.CounselingSession{}, "id = ?", sessionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepositoryImpl) CountByCounselor(counselorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.CounselingSession{}).
		Where("counselor_id = ?", counselorID).
		Count(&count).Error
	return count, err
}

func (r *SessionRepositoryImpl) CountByCounselorAndStatus(counselorID string, status models.SessionStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.CounselingSession{}).
		Where("counselor_id = ? AND status = ?", counselorID, status).
		Count(&count).Error
	return count, err
}

func (r *SessionRepositoryImpl) CountUpcomingByCounselor(counselorID string, after time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.CounselingSession{}).
		Where("counselor_id = ? AND status = ? AND scheduled_at > ?",
			counselorID, models.SessionStatusScheduled, after).
		Count(&count).Error
	return count, err
}
