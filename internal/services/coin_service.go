package services

import (
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type CoinService interface {
	GetBalance(userID string) (*dto.CoinBalanceResponse, error)
	HasEnough(userID string, amount int) (*dto.CoinCheckResponse, error)
	Deduct(userID string, amount int) error
	Add(userID string, amount int) error
	AddScore(userID string, points int) error
}

type CoinServiceImpl struct {
	coinRepo repositories.CoinRepository
}

func NewCoinService(coinRepo repositories.CoinRepository) CoinService {
	return &CoinServiceImpl{coinRepo: coinRepo}
}

func (s *CoinServiceImpl) GetBalance(userID string) (*dto.CoinBalanceResponse, error) {
	account, err := s.coinRepo.GetOrCreate(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CoinBalanceResponse{Coins: account.Coins, Score: account.Score}, nil
}

func (s *CoinServiceImpl) HasEnough(userID string, amount int) (*dto.CoinCheckResponse, error) {
	account, err := s.coinRepo.GetOrCreate(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CoinCheckResponse{
		HasEnough: account.Coins >= amount,
		Coins:     account.Coins,
	}, nil
}

func (s *CoinServiceImpl) Deduct(userID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	// Touch the account first so a fresh user gets the default balance
	// before the conditional decrement runs.
	if _, err := s.coinRepo.GetOrCreate(userID); err != nil {
		return apperrors.InternalError(err)
	}
	err := s.coinRepo.Deduct(userID, amount)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInsufficientCoins) {
			return apperrors.ErrInsufficientCoins
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CoinServiceImpl) Add(userID string, amount int) error {
	if amount <= 0 {
		return nil
	}
	if _, err := s.coinRepo.GetOrCreate(userID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.coinRepo.Add(userID, amount); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CoinServiceImpl) AddScore(userID string, points int) error {
	if points <= 0 {
		return nil
	}
	if _, err := s.coinRepo.GetOrCreate(userID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.coinRepo.AddScore(userID, points); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
