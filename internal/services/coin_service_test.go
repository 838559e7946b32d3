package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/pkg/apperrors"
)

func newCoinService(t *testing.T) (CoinService, *models.User) {
	db := newTestDB(t)
	user := createTestUser(t, db, "coins@example.com", models.UserRoleCandidate)
	return NewCoinService(repositories.NewCoinRepository(db, models.DefaultCoinBalance)), user
}

func TestCoinServiceGrantsDefaultBalanceOnFirstTouch(t *testing.T) {
	svc, user := newCoinService(t)

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance, balance.Coins)
	assert.Equal(t, 0, balance.Score)
}

func TestCoinServiceHonorsConfiguredDefaultBalance(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "coins-config@example.com", models.UserRoleCandidate)
	svc := NewCoinService(repositories.NewCoinRepository(db, 250))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, balance.Coins)
}

func TestCoinServiceZeroConfiguredBalanceFallsBack(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "coins-zero@example.com", models.UserRoleCandidate)
	svc := NewCoinService(repositories.NewCoinRepository(db, 0))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance, balance.Coins)
}

func TestCoinServiceDeduct(t *testing.T) {
	svc, user := newCoinService(t)

	require.NoError(t, svc.Deduct(user.ID, 30))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, balance.Coins)
}

func TestCoinServiceDeductInsufficientLeavesBalance(t *testing.T) {
	svc, user := newCoinService(t)

	err := svc.Deduct(user.ID, models.DefaultCoinBalance+1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientCoins))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance, balance.Coins)
}

func TestCoinServiceDeductExactBalance(t *testing.T) {
	svc, user := newCoinService(t)

	require.NoError(t, svc.Deduct(user.ID, models.DefaultCoinBalance))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Coins)
}

func TestCoinServiceDeductNonPositiveIsNoop(t *testing.T) {
	svc, user := newCoinService(t)

	require.NoError(t, svc.Deduct(user.ID, 0))
	require.NoError(t, svc.Deduct(user.ID, -5))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance, balance.Coins)
}

func TestCoinServiceAddAndScore(t *testing.T) {
	svc, user := newCoinService(t)

	require.NoError(t, svc.Add(user.ID, 25))
	require.NoError(t, svc.AddScore(user.ID, 10))

	balance, err := svc.GetBalance(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCoinBalance+25, balance.Coins)
	assert.Equal(t, 10, balance.Score)
}

func TestCoinServiceHasEnough(t *testing.T) {
	svc, user := newCoinService(t)

	check, err := svc.HasEnough(user.ID, 50)
	require.NoError(t, err)
	assert.True(t, check.HasEnough)
	assert.Equal(t, models.DefaultCoinBalance, check.Coins)

	check, err = svc.HasEnough(user.ID, models.DefaultCoinBalance+1)
	require.NoError(t, err)
	assert.False(t, check.HasEnough)
}
