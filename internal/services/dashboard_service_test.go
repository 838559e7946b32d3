package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
)

func newDashboardService(t *testing.T) (DashboardService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewDashboardService(
		repositories.NewApplicationRepository(db),
		repositories.NewSavedJobRepository(db),
		repositories.NewCoinRepository(db, models.DefaultCoinBalance),
		repositories.NewJobRepository(db),
		repositories.NewInterviewRepository(db),
		repositories.NewStudentRepository(db),
		repositories.NewSessionRepository(db),
		repositories.NewCareerPlanRepository(db),
		repositories.NewResourceRepository(db),
	)
	return svc, db
}

func TestCandidateStats(t *testing.T) {
	svc, db := newDashboardService(t)
	candidate := createTestUser(t, db, "cand@example.com", models.UserRoleCandidate)

	jobs := make([]*models.Job, 4)
	for i := range jobs {
		jobs[i] = createTestJob(t, db, models.Job{Title: "Role"})
	}

	statuses := []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusReviewing,
		models.ApplicationStatusShortlisted,
		models.ApplicationStatusRejected,
	}
	for i, status := range statuses {
		require.NoError(t, db.Create(&models.JobApplication{
			CandidateID: candidate.ID,
			JobID:       jobs[i].ID,
			Status:      status,
		}).Error)
	}
	require.NoError(t, db.Create(&models.SavedJob{
		CandidateID: candidate.ID,
		JobID:       jobs[0].ID,
	}).Error)

	stats, err := svc.CandidateStats(candidate.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalApplications)
	assert.EqualValues(t, 2, stats.PendingApplications)
	assert.EqualValues(t, 1, stats.ShortlistedApplications)
	assert.EqualValues(t, 1, stats.RejectedApplications)
	assert.EqualValues(t, 0, stats.HiredApplications)
	assert.EqualValues(t, 1, stats.SavedJobs)
	assert.Equal(t, models.DefaultCoinBalance, stats.Coins)
}

func TestRecruiterStats(t *testing.T) {
	svc, db := newDashboardService(t)
	recruiter := createTestUser(t, db, "recr@example.com", models.UserRoleRecruiter)
	candA := createTestUser(t, db, "a@example.com", models.UserRoleCandidate)
	candB := createTestUser(t, db, "b@example.com", models.UserRoleCandidate)

	active := createTestJob(t, db, models.Job{RecruiterID: &recruiter.ID, Title: "Active"})
	createTestJob(t, db, models.Job{RecruiterID: &recruiter.ID, Title: "Closed", Status: models.JobStatusClosed})

	for _, cand := range []*models.User{candA, candB} {
		require.NoError(t, db.Create(&models.JobApplication{
			CandidateID: cand.ID,
			JobID:       active.ID,
			Status:      models.ApplicationStatusPending,
		}).Error)
	}

	stats, err := svc.RecruiterStats(recruiter.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalJobs)
	assert.EqualValues(t, 1, stats.ActiveJobs)
	assert.EqualValues(t, 2, stats.TotalApplications)
	assert.EqualValues(t, 2, stats.PendingApplications)
	assert.EqualValues(t, 2, stats.TotalCandidates)
}

func TestCounselorStats(t *testing.T) {
	svc, db := newDashboardService(t)
	counselor := createTestUser(t, db, "coun@example.com", models.UserRoleCounselor)
	studentUser := createTestUser(t, db, "stud@example.com", models.UserRoleCandidate)

	student := &models.Student{
		UserID:      studentUser.ID,
		CounselorID: counselor.ID,
		Status:      models.StudentStatusActive,
	}
	require.NoError(t, db.Create(student).Error)

	require.NoError(t, db.Create(&models.Resource{
		CounselorID: counselor.ID,
		Title:       "Interview prep guide",
		Type:        "article",
		IsFeatured:  true,
	}).Error)

	stats, err := svc.CounselorStats(counselor.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 1, stats.TotalStudents)
	assert.EqualValues(t, 1, stats.ActiveStudents)
	assert.EqualValues(t, 0, stats.TotalSessions)
	assert.EqualValues(t, 1, stats.TotalResources)
	assert.EqualValues(t, 1, stats.FeaturedResources)
}
