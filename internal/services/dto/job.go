package dto

import "time"

type CreateJobRequest struct {
	Title           string     `json:"title" validate:"required"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Type            string     `json:"type" validate:"omitempty,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel string     `json:"experienceLevel"`
	Description     string     `json:"description"`
	Requirements    []string   `json:"requirements"`
	RequiredSkills  []string   `json:"requiredSkills"`
	Salary          string     `json:"salary"`
	CareerTrack     string     `json:"careerTrack"`
	Deadline        *time.Time `json:"deadline"`
	Status          string     `json:"status" validate:"omitempty,oneof=active closed draft"`
	CoinCost        *int       `json:"coinCost" validate:"omitempty,gte=0"`
}

type UpdateJobRequest struct {
	Title           string     `json:"title" validate:"required"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Type            string     `json:"type" validate:"omitempty,oneof=full-time part-time contract internship freelance"`
	ExperienceLevel string     `json:"experienceLevel"`
	Description     string     `json:"description"`
	Requirements    []string   `json:"requirements"`
	RequiredSkills  []string   `json:"requiredSkills"`
	Salary          string     `json:"salary"`
	CareerTrack     string     `json:"careerTrack"`
	Deadline        *time.Time `json:"deadline"`
	Status          string     `json:"status" validate:"omitempty,oneof=active closed draft"`
	CoinCost        *int       `json:"coinCost" validate:"omitempty,gte=0"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active closed draft"`
}

type JobSearchQuery struct {
	Query           string `form:"query"`
	Location        string `form:"location"`
	Type            string `form:"type"`
	ExperienceLevel string `form:"experienceLevel"`
	CareerTrack     string `form:"careerTrack"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
}

type JobResponse struct {
	ID              string     `json:"id"`
	RecruiterID     *string    `json:"recruiterId,omitempty"`
	Title           string     `json:"title"`
	Company         string     `json:"company"`
	Location        string     `json:"location"`
	Type            string     `json:"type"`
	ExperienceLevel string     `json:"experienceLevel"`
	Description     string     `json:"description"`
	Requirements    []string   `json:"requirements"`
	RequiredSkills  []string   `json:"requiredSkills"`
	Salary          string     `json:"salary"`
	CareerTrack     string     `json:"careerTrack"`
	PostedDate      *time.Time `json:"postedDate"`
	Deadline        *time.Time `json:"deadline"`
	Status          string     `json:"status"`
	CoinCost        *int       `json:"coinCost"`
	Views           int        `json:"views"`

	// Populated only on the matched-jobs listing.
	MatchScore    *int     `json:"matchScore,omitempty"`
	MatchReasons  []string `json:"matchReasons,omitempty"`
	MatchedSkills []string `json:"matchedSkills,omitempty"`
}

type JobListResponse struct {
	Jobs     []JobResponse `json:"jobs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}
