package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	RecruiterID     *string `gorm:"index"` // nil for seed jobs with no owner
	Title           string  `gorm:"not null"`
	Company         string
	Location        string
	Type            string // full-time, part-time, contract, internship, freelance
	ExperienceLevel string // entry-level, junior, mid-level, senior, lead
	Description     string
	Requirements    datatypes.JSON `gorm:"type:jsonb"`
	RequiredSkills  datatypes.JSON `gorm:"type:jsonb"`
	Salary          string
	CareerTrack     string
	PostedDate      *time.Time
	Deadline        *time.Time
	Status          JobStatus `gorm:"type:varchar(20);default:'active'"`
	CoinCost        *int
	Views           int `gorm:"not null;default:0"`
}

type JobApplication struct {
	BaseModel
	CandidateID   string            `gorm:"not null;uniqueIndex:idx_candidate_job"`
	JobID         string            `gorm:"not null;uniqueIndex:idx_candidate_job"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'"`
	AppliedAt     time.Time
	CoinsDeducted *int

	Job       Job  `gorm:"foreignKey:JobID"`
	Candidate User `gorm:"foreignKey:CandidateID"`
}

type SavedJob struct {
	BaseModel
	CandidateID string `gorm:"not null;uniqueIndex:idx_candidate_saved_job"`
	JobID       string `gorm:"not null;uniqueIndex:idx_candidate_saved_job"`
	SavedAt     time.Time

	Job Job `gorm:"foreignKey:JobID"`
}
