package dto

import "time"

type ProjectRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

type ExperienceRequest struct {
	Company     string     `json:"company" validate:"required"`
	Position    string     `json:"position" validate:"required"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationRequest struct {
	Institution string     `json:"institution" validate:"required"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	GPA         string     `json:"gpa"`
}

type ProfileRequest struct {
	FullName             string              `json:"fullName" validate:"required"`
	EducationLevel       string              `json:"educationLevel"`
	ExperienceLevel      string              `json:"experienceLevel"`
	PreferredCareerTrack string              `json:"preferredCareerTrack"`
	TargetRole           string              `json:"targetRole"`
	CVFileName           string              `json:"cvFileName"`
	Skills               []string            `json:"skills"`
	Projects             []ProjectRequest    `json:"projects"`
	Experiences          []ExperienceRequest `json:"experiences"`
	Educations           []EducationRequest  `json:"educations"`
}

type ProjectResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

type ExperienceResponse struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationResponse struct {
	ID          string     `json:"id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	GPA         string     `json:"gpa"`
}

type ProfileResponse struct {
	ID                   string               `json:"id"`
	UserID               string               `json:"userId"`
	FullName             string               `json:"fullName"`
	EducationLevel       string               `json:"educationLevel"`
	ExperienceLevel      string               `json:"experienceLevel"`
	PreferredCareerTrack string               `json:"preferredCareerTrack"`
	TargetRole           string               `json:"targetRole"`
	CVFileName           string               `json:"cvFileName"`
	Skills               []string             `json:"skills"`
	Projects             []ProjectResponse    `json:"projects"`
	Experiences          []ExperienceResponse `json:"experiences"`
	Educations           []EducationResponse  `json:"educations"`
}
