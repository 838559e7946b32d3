package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

func newRecruiterJobService(t *testing.T) (RecruiterJobService, *gorm.DB, *models.User) {
	db := newTestDB(t)
	recruiter := createTestUser(t, db, "recruiter@example.com", models.UserRoleRecruiter)
	return NewRecruiterJobService(repositories.NewJobRepository(db)), db, recruiter
}

func TestCreateJobDefaultsToActive(t *testing.T) {
	svc, _, recruiter := newRecruiterJobService(t)

	resp, err := svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{
		Title:          "Go Developer",
		Company:        "Acme",
		Type:           "full-time",
		RequiredSkills: []string{"go", "postgres"},
		CoinCost:       intPtr(15),
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.JobStatusActive), resp.Status)
	require.NotNil(t, resp.RecruiterID)
	assert.Equal(t, recruiter.ID, *resp.RecruiterID)
	assert.NotNil(t, resp.PostedDate)
	assert.ElementsMatch(t, []string{"go", "postgres"}, resp.RequiredSkills)
}

func TestUpdateJobByOwner(t *testing.T) {
	svc, _, recruiter := newRecruiterJobService(t)

	created, err := svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{Title: "Before"})
	require.NoError(t, err)

	updated, err := svc.UpdateJob(recruiter.ID, created.ID, &dto.UpdateJobRequest{
		Title:    "After",
		Location: "Remote",
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "Remote", updated.Location)
}

func TestUpdateJobByForeignRecruiter(t *testing.T) {
	svc, db, recruiter := newRecruiterJobService(t)
	other := createTestUser(t, db, "other@example.com", models.UserRoleRecruiter)

	created, err := svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{Title: "Mine"})
	require.NoError(t, err)

	_, err = svc.UpdateJob(other.ID, created.ID, &dto.UpdateJobRequest{Title: "Stolen"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
}

func TestUpdateJobStatus(t *testing.T) {
	svc, _, recruiter := newRecruiterJobService(t)

	created, err := svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{Title: "Role"})
	require.NoError(t, err)

	resp, err := svc.UpdateJobStatus(recruiter.ID, created.ID, &dto.UpdateJobStatusRequest{
		Status: string(models.JobStatusClosed),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.JobStatusClosed), resp.Status)
}

func TestDeleteJob(t *testing.T) {
	svc, db, recruiter := newRecruiterJobService(t)
	other := createTestUser(t, db, "other@example.com", models.UserRoleRecruiter)

	created, err := svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{Title: "Role"})
	require.NoError(t, err)

	err = svc.DeleteJob(other.ID, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

	require.NoError(t, svc.DeleteJob(recruiter.ID, created.ID))

	_, err = svc.GetJob(recruiter.ID, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
}

func TestListJobsByStatusScopedToRecruiter(t *testing.T) {
	svc, db, recruiter := newRecruiterJobService(t)
	other := createTestUser(t, db, "other@example.com", models.UserRoleRecruiter)

	_, err := svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{Title: "Mine active"})
	require.NoError(t, err)
	_, err = svc.CreateJob(recruiter.ID, &dto.CreateJobRequest{Title: "Mine draft", Status: string(models.JobStatusDraft)})
	require.NoError(t, err)
	_, err = svc.CreateJob(other.ID, &dto.CreateJobRequest{Title: "Theirs"})
	require.NoError(t, err)

	active, err := svc.ListJobsByStatus(recruiter.ID, string(models.JobStatusActive))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Mine active", active[0].Title)

	all, err := svc.ListJobs(recruiter.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
