package models

import "time"

type Interview struct {
	BaseModel
	ApplicationID   string `gorm:"index;not null"`
	RecruiterID     string `gorm:"index;not null"`
	ScheduledAt     time.Time
	DurationMinutes int
	Type            string // technical, behavioral, screening...
	Status          InterviewStatus `gorm:"type:varchar(20);default:'scheduled'"`
	MeetingLink     string
	Location        string
	Notes           string
	Feedback        string

	Application JobApplication `gorm:"foreignKey:ApplicationID"`
}
