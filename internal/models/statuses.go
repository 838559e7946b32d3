package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type StudentStatus string
type SessionStatus string
type SessionType string
type PlanStatus string
type InterviewStatus string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleCounselor UserRole = "counselor"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"

	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusHired       ApplicationStatus = "hired"

	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"

	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"

	SessionTypeInPerson SessionType = "in-person"
	SessionTypeVideo    SessionType = "video"
	SessionTypePhone    SessionType = "phone"

	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"

	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleCandidate, UserRoleRecruiter, UserRoleCounselor:
		return true
	}
	return false
}
