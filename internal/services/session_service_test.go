package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type counselingFixture struct {
	db        *gorm.DB
	sessions  SessionService
	counselor *models.User
	student   *models.Student
}

func newCounselingFixture(t *testing.T) *counselingFixture {
	db := newTestDB(t)
	counselor := createTestUser(t, db, "counselor@example.com", models.UserRoleCounselor)
	studentUser := createTestUser(t, db, "student@example.com", models.UserRoleCandidate)

	student := &models.Student{
		UserID:      studentUser.ID,
		CounselorID: counselor.ID,
		Program:     "Computer Science",
		Status:      models.StudentStatusActive,
	}
	require.NoError(t, db.Create(student).Error)

	return &counselingFixture{
		db:        db,
		sessions:  NewSessionService(repositories.NewSessionRepository(db), repositories.NewStudentRepository(db)),
		counselor: counselor,
		student:   student,
	}
}

func TestCreateSessionStampsLastSessionAt(t *testing.T) {
	f := newCounselingFixture(t)
	scheduledAt := time.Now().Add(48 * time.Hour).Truncate(time.Second)

	resp, err := f.sessions.Create(f.counselor.ID, &dto.CreateSessionRequest{
		StudentID:       f.student.ID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: 45,
		Type:            string(models.SessionTypeVideo),
		MeetingLink:     "https://meet.example.com/abc",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.SessionStatusScheduled), resp.Status)
	assert.Equal(t, f.student.ID, resp.StudentID)

	var student models.Student
	require.NoError(t, f.db.First(&student, "id = ?", f.student.ID).Error)
	require.NotNil(t, student.LastSessionAt)
	assert.WithinDuration(t, scheduledAt, *student.LastSessionAt, time.Second)
}

func TestCreateSessionForForeignStudent(t *testing.T) {
	f := newCounselingFixture(t)
	other := createTestUser(t, f.db, "other@example.com", models.UserRoleCounselor)

	_, err := f.sessions.Create(other.ID, &dto.CreateSessionRequest{
		StudentID:   f.student.ID,
		ScheduledAt: time.Now().Add(time.Hour),
		Type:        string(models.SessionTypePhone),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
}

func TestUpdateSessionStatusKeepsFeedback(t *testing.T) {
	f := newCounselingFixture(t)

	created, err := f.sessions.Create(f.counselor.ID, &dto.CreateSessionRequest{
		StudentID:   f.student.ID,
		ScheduledAt: time.Now().Add(time.Hour),
		Type:        string(models.SessionTypeInPerson),
		Location:    "Room 204",
	})
	require.NoError(t, err)

	resp, err := f.sessions.UpdateStatus(f.counselor.ID, created.ID, &dto.UpdateSessionStatusRequest{
		Status:   string(models.SessionStatusCompleted),
		Feedback: "Went well",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.SessionStatusCompleted), resp.Status)
	assert.Equal(t, "Went well", resp.Feedback)
}

func TestDeleteSessionOwnership(t *testing.T) {
	f := newCounselingFixture(t)
	other := createTestUser(t, f.db, "other@example.com", models.UserRoleCounselor)

	created, err := f.sessions.Create(f.counselor.ID, &dto.CreateSessionRequest{
		StudentID:   f.student.ID,
		ScheduledAt: time.Now().Add(time.Hour),
		Type:        string(models.SessionTypeVideo),
	})
	require.NoError(t, err)

	err = f.sessions.Delete(other.ID, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

	require.NoError(t, f.sessions.Delete(f.counselor.ID, created.ID))

	_, err = f.sessions.GetByID(f.counselor.ID, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrSessionNotFound))
}
