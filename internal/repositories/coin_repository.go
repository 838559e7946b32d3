package repositories

import (
	"errors"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
)

var (
	ErrCoinAccountNotFound = errors.New("coin account not found")
	ErrInsufficientCoins   = errors.New("insufficient coins")
)

type CoinRepository interface {
	// GetOrCreate returns the user's account, creating one with the
	// default balance on first touch.
	GetOrCreate(userID string) (*models.CoinAccount, error)
	Deduct(userID string, amount int) error
	// DeductTx runs the same conditional decrement inside a caller-owned
	// transaction.
	DeductTx(tx *gorm.DB, userID string, amount int) error
	Add(userID string, amount int) error
	AddScore(userID string, points int) error
}

type CoinRepositoryImpl struct {
	db             *gorm.DB
	defaultBalance int
}

func NewCoinRepository(db *gorm.DB, defaultBalance int) CoinRepository {
	if defaultBalance <= 0 {
		defaultBalance = models.DefaultCoinBalance
	}
	return &CoinRepositoryImpl{db: db, defaultBalance: defaultBalance}
}

func (r *CoinRepositoryImpl) GetOrCreate(userID string) (*models.CoinAccount, error) {
	var account models.CoinAccount
	err := r.db.Where("user_id = ?", userID).First(&account).Error
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account = models.CoinAccount{
		UserID: userID,
		Coins:  r.defaultBalance,
		Score:  0,
	}
	if err := r.db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Deduct decrements the balance atomically. The balance guard in the
// WHERE clause makes concurrent deductions safe: whichever update
// matches zero rows reports insufficient coins.
func (r *CoinRepositoryImpl) Deduct(userID string, amount int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return r.DeductTx(tx, userID, amount)
	})
}

func (r *CoinRepositoryImpl) DeductTx(tx *gorm.DB, userID string, amount int) error {
	result := tx.Model(&models.CoinAccount{}).
		Where("user_id = ? AND coins >= ?", userID, amount).
		Update("coins", gorm.Expr("coins - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.CoinAccount{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCoinAccountNotFound
		}
		return ErrInsufficientCoins
	}
	return nil
}

func (r *CoinRepositoryImpl) Add(userID string, amount int) error {
	result := r.db.Model(&models.CoinAccount{}).
		Where("user_id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoinAccountNotFound
	}
	return nil
}

func (r *CoinRepositoryImpl) AddScore(userID string, points int) error {
	result := r.db.Model(&models.CoinAccount{}).
		Where("user_id = ?", userID).
		Update("score", gorm.Expr("score + ?", points))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoinAccountNotFound
	}
	return nil
}
