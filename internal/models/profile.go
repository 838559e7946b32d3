package models

import "time"

// CandidateProfile owns its skill/project/experience/education rows.
// Profile updates replace those lists wholesale (clear-then-rebuild).
type CandidateProfile struct {
	BaseModel
	UserID               string `gorm:"uniqueIndex;not null"`
	FullName             string
	EducationLevel       string
	ExperienceLevel      string
	PreferredCareerTrack string
	TargetRole           string
	CVFileName           string

	Skills      []Skill          `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Projects    []Project        `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Experiences []WorkExperience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Educations  []Education      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

type Skill struct {
	BaseModel
	ProfileID string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
}

type Project struct {
	BaseModel
	ProfileID    string `gorm:"index;not null"`
	Title        string
	Description  string
	Technologies string
	Link         string
}

type WorkExperience struct {
	BaseModel
	ProfileID   string `gorm:"index;not null"`
	Company     string
	Position    string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     bool
	Description string
}

type Education struct {
	BaseModel
	ProfileID   string `gorm:"index;not null"`
	Institution string
	Degree      string
	Field       string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     bool
	GPA         string
}
