package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"luvo_backend/internal/email"
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

// recordingProvider captures outgoing mail for assertions.
type recordingProvider struct {
	mu      sync.Mutex
	invites []email.InterviewInvite
	to      []string
}

func (p *recordingProvider) SendWelcome(string, string) error { return nil }

func (p *recordingProvider) SendInterviewScheduled(to string, invite email.InterviewInvite) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.to = append(p.to, to)
	p.invites = append(p.invites, invite)
	return nil
}

func (p *recordingProvider) Close() error { return nil }

type interviewFixture struct {
	db        *gorm.DB
	svc       InterviewService
	mail      *recordingProvider
	recruiter *models.User
	candidate *models.User
	app       *models.JobApplication
}

func newInterviewFixture(t *testing.T) *interviewFixture {
	db := newTestDB(t)
	mail := &recordingProvider{}

	recruiter := createTestUser(t, db, "recr@example.com", models.UserRoleRecruiter)
	candidate := createTestUser(t, db, "cand@example.com", models.UserRoleCandidate)
	job := createTestJob(t, db, models.Job{
		RecruiterID: &recruiter.ID,
		Title:       "Go Developer",
		Company:     "Acme",
	})

	app := &models.JobApplication{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      models.ApplicationStatusShortlisted,
		AppliedAt:   time.Now(),
	}
	require.NoError(t, db.Create(app).Error)

	svc := NewInterviewService(
		repositories.NewInterviewRepository(db),
		repositories.NewApplicationRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewProfileRepository(db),
		mail,
	)
	return &interviewFixture{db: db, svc: svc, mail: mail, recruiter: recruiter, candidate: candidate, app: app}
}

func TestScheduleInterviewNotifiesCandidate(t *testing.T) {
	f := newInterviewFixture(t)
	scheduledAt := time.Now().Add(72 * time.Hour)

	resp, err := f.svc.Schedule(f.recruiter.ID, &dto.ScheduleInterviewRequest{
		ApplicationID: f.app.ID,
		ScheduledAt:   scheduledAt,
		Type:          "technical",
		MeetingLink:   "https://meet.example.com/xyz",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.InterviewStatusScheduled), resp.Status)
	assert.Equal(t, "Go Developer", resp.JobTitle)

	require.Len(t, f.mail.invites, 1)
	assert.Equal(t, f.candidate.Email, f.mail.to[0])
	assert.Equal(t, "Go Developer", f.mail.invites[0].JobTitle)
	assert.Equal(t, "Acme", f.mail.invites[0].Company)
	// Without a profile the username is used as the display name.
	assert.Equal(t, f.candidate.Username, f.mail.invites[0].CandidateName)
}

func TestScheduleInterviewUsesProfileName(t *testing.T) {
	f := newInterviewFixture(t)
	require.NoError(t, f.db.Create(&models.CandidateProfile{
		UserID:   f.candidate.ID,
		FullName: "Dana K",
	}).Error)

	_, err := f.svc.Schedule(f.recruiter.ID, &dto.ScheduleInterviewRequest{
		ApplicationID: f.app.ID,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.Len(t, f.mail.invites, 1)
	assert.Equal(t, "Dana K", f.mail.invites[0].CandidateName)
}

func TestScheduleInterviewForForeignApplication(t *testing.T) {
	f := newInterviewFixture(t)
	other := createTestUser(t, f.db, "other@example.com", models.UserRoleRecruiter)

	_, err := f.svc.Schedule(other.ID, &dto.ScheduleInterviewRequest{
		ApplicationID: f.app.ID,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	assert.Empty(t, f.mail.invites)
}

func TestUpdateInterviewStatusWithFeedback(t *testing.T) {
	f := newInterviewFixture(t)

	created, err := f.svc.Schedule(f.recruiter.ID, &dto.ScheduleInterviewRequest{
		ApplicationID: f.app.ID,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateStatus(f.recruiter.ID, created.ID, &dto.UpdateInterviewStatusRequest{
		Status:   string(models.InterviewStatusCompleted),
		Feedback: "Strong candidate",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.InterviewStatusCompleted), resp.Status)
	assert.Equal(t, "Strong candidate", resp.Feedback)
}

func TestListUpcomingExcludesPastInterviews(t *testing.T) {
	f := newInterviewFixture(t)

	past := &models.Interview{
		ApplicationID: f.app.ID,
		RecruiterID:   f.recruiter.ID,
		ScheduledAt:   time.Now().Add(-24 * time.Hour),
		Status:        models.InterviewStatusScheduled,
	}
	require.NoError(t, f.db.Create(past).Error)

	created, err := f.svc.Schedule(f.recruiter.ID, &dto.ScheduleInterviewRequest{
		ApplicationID: f.app.ID,
		ScheduledAt:   time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	upcoming, err := f.svc.ListUpcoming(f.recruiter.ID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, created.ID, upcoming[0].ID)
}
