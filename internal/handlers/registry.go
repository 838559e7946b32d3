package handlers

import (
	"luvo_backend/internal/services"
	"luvo_backend/internal/validator"
)

// AppHandlers groups the HTTP handlers for route registration.
type AppHandlers struct {
	Auth      *AuthHandler
	Role      *RoleHandler
	Candidate *CandidateHandler
	Recruiter *RecruiterHandler
	Counselor *CounselorHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth: NewAuthHandler(base, sc.AuthService),
		Role: NewRoleHandler(base, sc.RoleService),
		Candidate: NewCandidateHandler(
			base,
			sc.ProfileService,
			sc.JobService,
			sc.ApplicationService,
			sc.SavedJobService,
			sc.CoinService,
			sc.DashboardService,
		),
		Recruiter: NewRecruiterHandler(
			base,
			sc.RecruiterJobService,
			sc.ApplicationService,
			sc.CandidateService,
			sc.InterviewService,
			sc.DashboardService,
		),
		Counselor: NewCounselorHandler(
			base,
			sc.StudentService,
			sc.SessionService,
			sc.CareerPlanService,
			sc.ResourceService,
			sc.DashboardService,
		),
	}
}
