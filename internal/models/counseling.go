package models

import (
	"time"

	"gorm.io/datatypes"
)

type Student struct {
	BaseModel
	UserID        string `gorm:"uniqueIndex;not null"`
	CounselorID   string `gorm:"index;not null"`
	Program       string
	Year          string
	GPA           string
	Status        StudentStatus `gorm:"type:varchar(20);default:'active'"`
	LastSessionAt *time.Time

	User User `gorm:"foreignKey:UserID"`
}

type CounselingSession struct {
	BaseModel
	StudentID       string `gorm:"index;not null"`
	CounselorID     string `gorm:"index;not null"`
	ScheduledAt     time.Time
	DurationMinutes int
	Type            SessionType   `gorm:"type:varchar(20)"`
	Status          SessionStatus `gorm:"type:varchar(20);default:'scheduled'"`
	MeetingLink     string
	Location        string
	Notes           string
	Feedback        string

	Student Student `gorm:"foreignKey:StudentID"`
}

type CareerPlan struct {
	BaseModel
	StudentID   string `gorm:"index;not null"`
	CounselorID string `gorm:"index;not null"`
	Title       string
	Goals       datatypes.JSON `gorm:"type:jsonb"`
	Timeline    string // e.g. "6 months", "1 year"
	ActionItems datatypes.JSON `gorm:"type:jsonb"`
	Status      PlanStatus `gorm:"type:varchar(20);default:'draft'"`

	Student Student `gorm:"foreignKey:StudentID"`
}

type Resource struct {
	BaseModel
	CounselorID string `gorm:"index;not null"`
	Title       string
	Description string
	Type        string
	ResourceURL string
	Category    string
	IsFeatured  bool `gorm:"default:false"`
}
