package services

import (
	"gorm.io/gorm"

	"luvo_backend/internal/auth"
	"luvo_backend/internal/email"
	"luvo_backend/internal/repositories"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	RoleService         RoleService
	CoinService         CoinService
	ProfileService      ProfileService
	JobService          JobService
	RecruiterJobService RecruiterJobService
	ApplicationService  ApplicationService
	SavedJobService     SavedJobService
	CandidateService    CandidateService
	InterviewService    InterviewService
	StudentService      StudentService
	SessionService      SessionService
	CareerPlanService   CareerPlanService
	ResourceService     ResourceService
	DashboardService    DashboardService
}

// NewServiceContainer wires repositories into services.
// defaultCoinBalance is granted on first coin-account access; zero or
// negative falls back to the built-in default.
func NewServiceContainer(db *gorm.DB, tokens *auth.TokenManager, emailProvider email.Provider, defaultCoinBalance int) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	coinRepo := repositories.NewCoinRepository(db, defaultCoinBalance)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	savedRepo := repositories.NewSavedJobRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	planRepo := repositories.NewCareerPlanRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, tokens, emailProvider),
		RoleService:         NewRoleService(userRepo),
		CoinService:         NewCoinService(coinRepo),
		ProfileService:      NewProfileService(profileRepo),
		JobService:          NewJobService(jobRepo, profileRepo),
		RecruiterJobService: NewRecruiterJobService(jobRepo),
		ApplicationService:  NewApplicationService(db, appRepo, jobRepo, coinRepo),
		SavedJobService:     NewSavedJobService(savedRepo, jobRepo),
		CandidateService:    NewCandidateService(appRepo, userRepo, profileRepo),
		InterviewService:    NewInterviewService(interviewRepo, appRepo, userRepo, profileRepo, emailProvider),
		StudentService:      NewStudentService(studentRepo, userRepo),
		SessionService:      NewSessionService(sessionRepo, studentRepo),
		CareerPlanService:   NewCareerPlanService(planRepo, studentRepo),
		ResourceService:     NewResourceService(resourceRepo),
		DashboardService: NewDashboardService(
			appRepo, savedRepo, coinRepo, jobRepo, interviewRepo,
			studentRepo, sessionRepo, planRepo, resourceRepo,
		),
	}
}
