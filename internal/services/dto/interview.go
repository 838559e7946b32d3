package dto

import "time"

type ScheduleInterviewRequest struct {
	ApplicationID   string    `json:"applicationId" validate:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,gt=0"`
	Type            string    `json:"type"`
	MeetingLink     string    `json:"meetingLink"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

type UpdateInterviewRequest struct {
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,gt=0"`
	Type            string    `json:"type"`
	MeetingLink     string    `json:"meetingLink"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

type UpdateInterviewStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=scheduled completed cancelled rescheduled"`
	Feedback string `json:"feedback"`
}

type InterviewResponse struct {
	ID              string    `json:"id"`
	ApplicationID   string    `json:"applicationId"`
	CandidateID     string    `json:"candidateId"`
	JobTitle        string    `json:"jobTitle"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	MeetingLink     string    `json:"meetingLink"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
	Feedback        string    `json:"feedback"`
}

// CandidateSummary is the recruiter's view of an applicant.
type CandidateSummary struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	FullName        string   `json:"fullName"`
	ExperienceLevel string   `json:"experienceLevel"`
	CareerTrack     string   `json:"careerTrack"`
	Skills          []string `json:"skills"`
}
