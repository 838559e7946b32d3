package models

type User struct {
	BaseModel
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Username     string    `gorm:"uniqueIndex;size:16;not null"`
	Role         *UserRole `gorm:"type:varchar(20)"` // nil until picked via /api/role

	// Relations
	Profile     *CandidateProfile `gorm:"foreignKey:UserID"`
	CoinAccount *CoinAccount      `gorm:"foreignKey:UserID"`
}

// HasRole reports whether the user has picked the given role.
func (u *User) HasRole(role UserRole) bool {
	return u.Role != nil && *u.Role == role
}
