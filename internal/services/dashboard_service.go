package services

import (
	"time"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

// DashboardService recomputes every stat from the store on each call.
type DashboardService interface {
	CandidateStats(candidateID string) (*dto.CandidateDashboardStats, error)
	RecruiterStats(recruiterID string) (*dto.RecruiterDashboardStats, error)
	CounselorStats(counselorID string) (*dto.CounselorDashboardStats, error)
}

type DashboardServiceImpl struct {
	appRepo       repositories.ApplicationRepository
	savedRepo     repositories.SavedJobRepository
	coinRepo      repositories.CoinRepository
	jobRepo       repositories.JobRepository
	interviewRepo repositories.InterviewRepository
	studentRepo   repositories.StudentRepository
	sessionRepo   repositories.SessionRepository
	planRepo      repositories.CareerPlanRepository
	resourceRepo  repositories.ResourceRepository
}

func NewDashboardService(
	appRepo repositories.ApplicationRepository,
	savedRepo repositories.SavedJobRepository,
	coinRepo repositories.CoinRepository,
	jobRepo repositories.JobRepository,
	interviewRepo repositories.InterviewRepository,
	studentRepo repositories.StudentRepository,
	sessionRepo repositories.SessionRepository,
	planRepo repositories.CareerPlanRepository,
	resourceRepo repositories.ResourceRepository,
) DashboardService {
	return &DashboardServiceImpl{
		appRepo:       appRepo,
		savedRepo:     savedRepo,
		coinRepo:      coinRepo,
		jobRepo:       jobRepo,
		interviewRepo: interviewRepo,
		studentRepo:   studentRepo,
		sessionRepo:   sessionRepo,
		planRepo:      planRepo,
		resourceRepo:  resourceRepo,
	}
}

// CandidateStats merges pending and reviewing into the pending bucket.
func (s *DashboardServiceImpl) CandidateStats(candidateID string) (*dto.CandidateDashboardStats, error) {
	stats := &dto.CandidateDashboardStats{}
	var err error

	if stats.TotalApplications, err = s.appRepo.CountByCandidate(candidateID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingApplications, err = s.appRepo.CountByCandidateAndStatus(candidateID,
		models.ApplicationStatusPending, models.ApplicationStatusReviewing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ShortlistedApplications, err = s.appRepo.CountByCandidateAndStatus(candidateID,
		models.ApplicationStatusShortlisted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.RejectedApplications, err = s.appRepo.CountByCandidateAndStatus(candidateID,
		models.ApplicationStatusRejected); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.HiredApplications, err = s.appRepo.CountByCandidateAndStatus(candidateID,
		models.ApplicationStatusHired); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.UpcomingInterviews, err = s.interviewRepo.CountUpcomingByCandidate(candidateID, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.SavedJobs, err = s.savedRepo.CountByCandidate(candidateID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	account, err := s.coinRepo.GetOrCreate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.Coins = account.Coins
	stats.Score = account.Score

	return stats, nil
}

func (s *DashboardServiceImpl) RecruiterStats(recruiterID string) (*dto.RecruiterDashboardStats, error) {
	stats := &dto.RecruiterDashboardStats{}
	var err error

	if stats.TotalJobs, err = s.jobRepo.CountByRecruiter(recruiterID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveJobs, err = s.jobRepo.CountByRecruiterAndStatus(recruiterID, models.JobStatusActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalApplications, err = s.appRepo.CountByRecruiter(recruiterID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingApplications, err = s.appRepo.CountByRecruiterAndStatus(recruiterID,
		models.ApplicationStatusPending, models.ApplicationStatusReviewing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ShortlistedApplications, err = s.appRepo.CountByRecruiterAndStatus(recruiterID,
		models.ApplicationStatusShortlisted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.HiredApplications, err = s.appRepo.CountByRecruiterAndStatus(recruiterID,
		models.ApplicationStatusHired); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCandidates, err = s.appRepo.CountDistinctCandidatesByRecruiter(recruiterID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.UpcomingInterviews, err = s.interviewRepo.CountUpcomingByRecruiter(recruiterID, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}

func (s *DashboardServiceImpl) CounselorStats(counselorID string) (*dto.CounselorDashboardStats, error) {
	stats := &dto.CounselorDashboardStats{}
	var err error

	if stats.TotalStudents, err = s.studentRepo.CountByCounselor(counselorID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveStudents, err = s.studentRepo.CountByCounselorAndStatus(counselorID, models.StudentStatusActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalSessions, err = s.sessionRepo.CountByCounselor(counselorID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ScheduledSessions, err = s.sessionRepo.CountByCounselorAndStatus(counselorID, models.SessionStatusScheduled); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalPlans, err = s.planRepo.CountByCounselor(counselorID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActivePlans, err = s.planRepo.CountByCounselorAndStatus(counselorID, models.PlanStatusActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalResources, err = s.resourceRepo.CountByCounselor(counselorID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.FeaturedResources, err = s.resourceRepo.CountFeaturedByCounselor(counselorID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}
