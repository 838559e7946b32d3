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

func newProfileService(t *testing.T) (ProfileService, *gorm.DB, *models.User) {
	db := newTestDB(t)
	user := createTestUser(t, db, "profile@example.com", models.UserRoleCandidate)
	return NewProfileService(repositories.NewProfileRepository(db)), db, user
}

func TestSaveProfileRoundTrip(t *testing.T) {
	svc, _, user := newProfileService(t)

	resp, err := svc.SaveProfile(user.ID, &dto.ProfileRequest{
		FullName:             "Aizhan T",
		EducationLevel:       "bachelor",
		ExperienceLevel:      "entry level",
		PreferredCareerTrack: "data-science",
		TargetRole:           "Data Analyst",
		Skills:               []string{"python", "sql"},
		Projects: []dto.ProjectRequest{
			{Title: "Churn model", Technologies: "python, sklearn"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "Aizhan T", resp.FullName)
	assert.Equal(t, "data-science", resp.PreferredCareerTrack)
	assert.ElementsMatch(t, []string{"python", "sql"}, resp.Skills)
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "Churn model", resp.Projects[0].Title)
	assert.Empty(t, resp.Experiences)
	assert.Empty(t, resp.Educations)
}

func TestSaveProfileReplacesListsWholesale(t *testing.T) {
	svc, db, user := newProfileService(t)

	_, err := svc.SaveProfile(user.ID, &dto.ProfileRequest{
		FullName: "Aizhan T",
		Skills:   []string{"python", "sql", "excel"},
	})
	require.NoError(t, err)

	resp, err := svc.SaveProfile(user.ID, &dto.ProfileRequest{
		FullName: "Aizhan T",
		Skills:   []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, resp.Skills)

	// No orphaned rows left behind by the rebuild.
	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveProfileKeepsSingleRowPerUser(t *testing.T) {
	svc, db, user := newProfileService(t)

	first, err := svc.SaveProfile(user.ID, &dto.ProfileRequest{FullName: "Before"})
	require.NoError(t, err)

	second, err := svc.SaveProfile(user.ID, &dto.ProfileRequest{FullName: "After"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "After", second.FullName)

	var count int64
	require.NoError(t, db.Model(&models.CandidateProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetProfileMissing(t *testing.T) {
	svc, _, user := newProfileService(t)

	_, err := svc.GetProfile(user.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrProfileNotFound))
}
