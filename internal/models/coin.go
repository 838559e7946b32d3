package models

// DefaultCoinBalance is granted when an account row is first created.
const DefaultCoinBalance = 100

type CoinAccount struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null"`
	Coins  int    `gorm:"not null;default:100"`
	Score  int    `gorm:"not null;default:0"`
}
