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

type applicationFixture struct {
	db        *gorm.DB
	svc       ApplicationService
	coins     CoinService
	candidate *models.User
	recruiter *models.User
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	db := newTestDB(t)
	return &applicationFixture{
		db: db,
		svc: NewApplicationService(
			db,
			repositories.NewApplicationRepository(db),
			repositories.NewJobRepository(db),
			repositories.NewCoinRepository(db, models.DefaultCoinBalance),
		),
		coins:     NewCoinService(repositories.NewCoinRepository(db, models.DefaultCoinBalance)),
		candidate: createTestUser(t, db, "cand@example.com", models.UserRoleCandidate),
		recruiter: createTestUser(t, db, "recr@example.com", models.UserRoleRecruiter),
	}
}

func (f *applicationFixture) paidJob(t *testing.T, cost int) *models.Job {
	return createTestJob(t, f.db, models.Job{
		RecruiterID: &f.recruiter.ID,
		Title:       "Backend Developer",
		CoinCost:    intPtr(cost),
	})
}

func TestApplyDeductsCoinsAndCreatesPendingApplication(t *testing.T) {
	f := newApplicationFixture(t)
	job := f.paidJob(t, 10)

	resp, err := f.svc.Apply(f.candidate.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusPending), resp.Status)
	require.NotNil(t, resp.CoinsDeducted)
	assert.Equal(t, 10, *resp.CoinsDeducted)

	balance, err := f.coins.GetBalance(f.candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance-10, balance.Coins)
}

func TestApplyTwiceIsRejectedWithoutSecondCharge(t *testing.T) {
	f := newApplicationFixture(t)
	job := f.paidJob(t, 10)

	_, err := f.svc.Apply(f.candidate.ID, job.ID)
	require.NoError(t, err)

	_, err = f.svc.Apply(f.candidate.ID, job.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrAlreadyApplied))

	balance, err := f.coins.GetBalance(f.candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance-10, balance.Coins)

	var count int64
	require.NoError(t, f.db.Model(&models.JobApplication{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyInsufficientCoinsCreatesNothing(t *testing.T) {
	f := newApplicationFixture(t)
	job := f.paidJob(t, models.DefaultCoinBalance+50)

	_, err := f.svc.Apply(f.candidate.ID, job.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientCoins))

	check, err := f.svc.HasApplied(f.candidate.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, check.HasApplied)

	balance, err := f.coins.GetBalance(f.candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance, balance.Coins)
}

func TestApplyFreeJobRecordsNoDeduction(t *testing.T) {
	f := newApplicationFixture(t)
	job := createTestJob(t, f.db, models.Job{Title: "Open Role"})

	resp, err := f.svc.Apply(f.candidate.ID, job.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.CoinsDeducted)
}

func TestApplyUnknownJob(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Apply(f.candidate.ID, "missing-job-id")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
}

func TestUpdateStatusByOwningRecruiter(t *testing.T) {
	f := newApplicationFixture(t)
	job := f.paidJob(t, 0)

	created, err := f.svc.Apply(f.candidate.ID, job.ID)
	require.NoError(t, err)

	resp, err := f.svc.UpdateStatus(f.recruiter.ID, created.ID, &dto.UpdateApplicationStatusRequest{
		Status: string(models.ApplicationStatusShortlisted),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusShortlisted), resp.Status)
}

func TestUpdateStatusRejectedForForeignRecruiter(t *testing.T) {
	f := newApplicationFixture(t)
	other := createTestUser(t, f.db, "other@example.com", models.UserRoleRecruiter)
	job := f.paidJob(t, 0)

	created, err := f.svc.Apply(f.candidate.ID, job.ID)
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(other.ID, created.ID, &dto.UpdateApplicationStatusRequest{
		Status: string(models.ApplicationStatusRejected),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
}

func TestListByRecruiterFiltersByJobOwnership(t *testing.T) {
	f := newApplicationFixture(t)
	other := createTestUser(t, f.db, "other@example.com", models.UserRoleRecruiter)
	mine := f.paidJob(t, 0)
	theirs := createTestJob(t, f.db, models.Job{RecruiterID: &other.ID, Title: "Other Role"})

	_, err := f.svc.Apply(f.candidate.ID, mine.ID)
	require.NoError(t, err)
	_, err = f.svc.Apply(f.candidate.ID, theirs.ID)
	require.NoError(t, err)

	apps, err := f.svc.ListByRecruiter(f.recruiter.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, mine.ID, apps[0].JobID)
}
