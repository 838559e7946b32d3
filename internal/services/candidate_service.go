package services

import (
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

// CandidateService is the recruiter's window onto the people who
// applied to their jobs.
type CandidateService interface {
	ListApplicants(recruiterID string) ([]dto.CandidateSummary, error)
	GetApplicant(recruiterID, candidateID string) (*dto.CandidateSummary, error)
}

type CandidateServiceImpl struct {
	appRepo     repositories.ApplicationRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewCandidateService(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) CandidateService {
	return &CandidateServiceImpl{
		appRepo:     appRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *CandidateServiceImpl) ListApplicants(recruiterID string) ([]dto.CandidateSummary, error) {
	apps, err := s.appRepo.FindByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	seen := make(map[string]bool, len(apps))
	summaries := make([]dto.CandidateSummary, 0, len(apps))
	for i := range apps {
		candidateID := apps[i].CandidateID
		if seen[candidateID] {
			continue
		}
		seen[candidateID] = true

		summary, err := s.buildSummary(candidateID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *CandidateServiceImpl) GetApplicant(recruiterID, candidateID string) (*dto.CandidateSummary, error) {
	apps, err := s.appRepo.FindByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	applied := false
	for i := range apps {
		if apps[i].CandidateID == candidateID {
			applied = true
			break
		}
	}
	if !applied {
		return nil, apperrors.ErrCandidateNotFound
	}

	return s.buildSummary(candidateID)
}

func (s *CandidateServiceImpl) buildSummary(candidateID string) (*dto.CandidateSummary, error) {
	user, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	summary := &dto.CandidateSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Skills:   []string{},
	}

	profile, err := s.profileRepo.FindByUserID(candidateID)
	if err == nil {
		summary.FullName = profile.FullName
		summary.ExperienceLevel = profile.ExperienceLevel
		summary.CareerTrack = profile.PreferredCareerTrack
		for _, skill := range profile.Skills {
			summary.Skills = append(summary.Skills, skill.Name)
		}
	} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return summary, nil
}
