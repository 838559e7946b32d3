package dto

import "time"

type CreateStudentRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Program string `json:"program"`
	Year    string `json:"year"`
	GPA     string `json:"gpa"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateStudentRequest struct {
	Program string `json:"program"`
	Year    string `json:"year"`
	GPA     string `json:"gpa"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type StudentResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Program       string     `json:"program"`
	Year          string     `json:"year"`
	GPA           string     `json:"gpa"`
	Status        string     `json:"status"`
	LastSessionAt *time.Time `json:"lastSessionAt"`
}

type CreateSessionRequest struct {
	StudentID       string    `json:"studentId" validate:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,gt=0"`
	Type            string    `json:"type" validate:"required,oneof=in-person video phone"`
	MeetingLink     string    `json:"meetingLink"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

type UpdateSessionRequest struct {
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,gt=0"`
	Type            string    `json:"type" validate:"required,oneof=in-person video phone"`
	MeetingLink     string    `json:"meetingLink"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

type UpdateSessionStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	Feedback string `json:"feedback"`
}

type SessionResponse struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	MeetingLink     string    `json:"meetingLink"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
	Feedback        string    `json:"feedback"`
}

type CreateCareerPlanRequest struct {
	StudentID   string   `json:"studentId" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Goals       []string `json:"goals"`
	Timeline    string   `json:"timeline"`
	ActionItems []string `json:"actionItems"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft active completed"`
}

type UpdateCareerPlanRequest struct {
	Title       string   `json:"title" validate:"required"`
	Goals       []string `json:"goals"`
	Timeline    string   `json:"timeline"`
	ActionItems []string `json:"actionItems"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft active completed"`
}

type CareerPlanResponse struct {
	ID          string   `json:"id"`
	StudentID   string   `json:"studentId"`
	Title       string   `json:"title"`
	Goals       []string `json:"goals"`
	Timeline    string   `json:"timeline"`
	ActionItems []string `json:"actionItems"`
	Status      string   `json:"status"`
}

type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required"`
	ResourceURL string `json:"resourceUrl" validate:"omitempty,url"`
	Category    string `json:"category"`
	IsFeatured  bool   `json:"isFeatured"`
}

type UpdateResourceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required"`
	ResourceURL string `json:"resourceUrl" validate:"omitempty,url"`
	Category    string `json:"category"`
	IsFeatured  bool   `json:"isFeatured"`
}

type ResourceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ResourceURL string `json:"resourceUrl"`
	Category    string `json:"category"`
	IsFeatured  bool   `json:"isFeatured"`
}
