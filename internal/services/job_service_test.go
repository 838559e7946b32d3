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

func newJobService(t *testing.T) (JobService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewJobService(
		repositories.NewJobRepository(db),
		repositories.NewProfileRepository(db),
	)
	return svc, db
}

func TestGetJobByIDCountsEveryView(t *testing.T) {
	svc, db := newJobService(t)
	job := createTestJob(t, db, models.Job{Title: "Go Developer"})

	first, err := svc.GetJobByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := svc.GetJobByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestGetJobByIDUnknown(t *testing.T) {
	svc, _ := newJobService(t)

	_, err := svc.GetJobByID("missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
}

func TestListJobsSkipsInactive(t *testing.T) {
	svc, db := newJobService(t)
	createTestJob(t, db, models.Job{Title: "Active Role"})
	createTestJob(t, db, models.Job{Title: "Closed Role", Status: models.JobStatusClosed})
	createTestJob(t, db, models.Job{Title: "Draft Role", Status: models.JobStatusDraft})

	list, err := svc.ListJobs(1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Jobs, 1)
	assert.Equal(t, "Active Role", list.Jobs[0].Title)
}

func TestListJobsPagination(t *testing.T) {
	svc, db := newJobService(t)
	for i := 0; i < 5; i++ {
		createTestJob(t, db, models.Job{Title: "Role"})
	}

	list, err := svc.ListJobs(2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, list.Total)
	assert.Len(t, list.Jobs, 2)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 2, list.PageSize)
}

func TestSearchJobsByTextAndLocation(t *testing.T) {
	svc, db := newJobService(t)
	createTestJob(t, db, models.Job{Title: "Frontend Engineer", Company: "Acme", Location: "Almaty"})
	createTestJob(t, db, models.Job{Title: "Backend Engineer", Company: "Acme", Location: "Astana"})
	createTestJob(t, db, models.Job{Title: "Designer", Company: "Other", Location: "Almaty"})

	list, err := svc.SearchJobs(&dto.JobSearchQuery{Query: "engineer", Location: "Almaty"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Jobs, 1)
	assert.Equal(t, "Frontend Engineer", list.Jobs[0].Title)
}

func TestSearchJobsIsCaseInsensitive(t *testing.T) {
	svc, db := newJobService(t)
	createTestJob(t, db, models.Job{Title: "DevOps Engineer", Company: "Acme"})

	list, err := svc.SearchJobs(&dto.JobSearchQuery{Query: "DEVOPS"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
}

func TestMatchedJobsSortedByScore(t *testing.T) {
	svc, db := newJobService(t)
	candidate := createTestUser(t, db, "matched@example.com", models.UserRoleCandidate)

	profile := &models.CandidateProfile{
		UserID:               candidate.ID,
		FullName:             "Test Candidate",
		ExperienceLevel:      "entry level",
		PreferredCareerTrack: "software-engineering",
		Skills: []models.Skill{
			{Name: "Go"},
			{Name: "React"},
		},
	}
	require.NoError(t, db.Create(profile).Error)

	strong := createTestJob(t, db, models.Job{
		Title:           "Junior Go Developer",
		CareerTrack:     "software-engineering",
		ExperienceLevel: "entry-level",
		RequiredSkills:  stringsToJSON([]string{"go", "react"}),
	})
	weak := createTestJob(t, db, models.Job{
		Title:       "Sales Manager",
		CareerTrack: "sales",
	})

	matched, err := svc.MatchedJobs(candidate.ID)
	require.NoError(t, err)
	require.Len(t, matched, 2)

	assert.Equal(t, strong.ID, matched[0].ID)
	assert.Equal(t, weak.ID, matched[1].ID)

	require.NotNil(t, matched[0].MatchScore)
	// 30 track + 20 skills + 20 experience.
	assert.Equal(t, 70, *matched[0].MatchScore)
	assert.ElementsMatch(t, []string{"go", "react"}, matched[0].MatchedSkills)

	require.NotNil(t, matched[1].MatchScore)
	assert.Equal(t, 0, *matched[1].MatchScore)
}

func TestMatchedJobsWithoutProfile(t *testing.T) {
	svc, db := newJobService(t)
	candidate := createTestUser(t, db, "noprofile@example.com", models.UserRoleCandidate)

	_, err := svc.MatchedJobs(candidate.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrProfileNotFound))
}
