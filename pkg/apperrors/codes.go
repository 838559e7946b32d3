package apperrors

import "net/http"

const (
	// Auth
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"
	CodeAlreadySaved       ErrorCode = "ALREADY_SAVED"
	CodeInsufficientCoins  ErrorCode = "INSUFFICIENT_COINS"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// Predefined errors
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	ErrUserNotFound        = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrProfileNotFound     = New(CodeNotFound, "Profile not found", http.StatusNotFound)
	ErrJobNotFound         = New(CodeNotFound, "Job not found", http.StatusNotFound)
	ErrApplicationNotFound = New(CodeNotFound, "Application not found", http.StatusNotFound)
	ErrStudentNotFound     = New(CodeNotFound, "Student not found", http.StatusNotFound)
	ErrSessionNotFound     = New(CodeNotFound, "Session not found", http.StatusNotFound)
	ErrPlanNotFound        = New(CodeNotFound, "Career plan not found", http.StatusNotFound)
	ErrResourceNotFound    = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrInterviewNotFound   = New(CodeNotFound, "Interview not found", http.StatusNotFound)
	ErrCandidateNotFound   = New(CodeNotFound, "Candidate not found or has not applied to your jobs", http.StatusNotFound)

	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	ErrAlreadyApplied    = New(CodeAlreadyApplied, "You have already applied for this job", http.StatusBadRequest)
	ErrJobAlreadySaved   = New(CodeAlreadySaved, "Job already saved", http.StatusBadRequest)
	ErrInsufficientCoins = New(CodeInsufficientCoins, "Insufficient coins", http.StatusBadRequest)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)
