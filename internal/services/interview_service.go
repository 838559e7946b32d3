package services

import (
	"time"

	"luvo_backend/internal/email"
	"luvo_backend/internal/logger"
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type InterviewService interface {
	Schedule(recruiterID string, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error)
	Update(recruiterID, interviewID string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error)
	UpdateStatus(recruiterID, interviewID string, req *dto.UpdateInterviewStatusRequest) (*dto.InterviewResponse, error)
	Delete(recruiterID, interviewID string) error
	List(recruiterID string) ([]dto.InterviewResponse, error)
	ListByStatus(recruiterID, status string) ([]dto.InterviewResponse, error)
	ListUpcoming(recruiterID string) ([]dto.InterviewResponse, error)
	GetByID(recruiterID, interviewID string) (*dto.InterviewResponse, error)
}

type InterviewServiceImpl struct {
	interviewRepo repositories.InterviewRepository
	appRepo       repositories.ApplicationRepository
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) InterviewService {
	return &InterviewServiceImpl{
		interviewRepo: interviewRepo,
		appRepo:       appRepo,
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

func (s *InterviewServiceImpl) Schedule(recruiterID string, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error) {
	app, err := s.appRepo.FindByID(req.ApplicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if app.Job.RecruiterID == nil || *app.Job.RecruiterID != recruiterID {
		return nil, apperrors.ErrForbidden
	}

	interview := &models.Interview{
		ApplicationID:   req.ApplicationID,
		RecruiterID:     recruiterID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		Status:          models.InterviewStatusScheduled,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
	}
	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyCandidate(app, interview)

	interview.Application = *app
	resp := interviewToResponse(interview)
	return &resp, nil
}

// notifyCandidate mails the candidate about the new interview. Delivery
// failures are logged, never surfaced: the interview is already booked.
func (s *InterviewServiceImpl) notifyCandidate(app *models.JobApplication, interview *models.Interview) {
	candidate, err := s.userRepo.FindByID(app.CandidateID)
	if err != nil {
		logger.WithError(err).Warn("interview notification skipped: candidate lookup failed")
		return
	}

	name := candidate.Username
	if profile, err := s.profileRepo.FindByUserID(candidate.ID); err == nil && profile.FullName != "" {
		name = profile.FullName
	}

	invite := email.InterviewInvite{
		CandidateName: name,
		JobTitle:      app.Job.Title,
		Company:       app.Job.Company,
		ScheduledAt:   interview.ScheduledAt,
		Type:          interview.Type,
		MeetingLink:   interview.MeetingLink,
		Location:      interview.Location,
	}
	if err := s.emailProvider.SendInterviewScheduled(candidate.Email, invite); err != nil {
		logger.WithError(err).Warn("failed to send interview notification")
	}
}

func (s *InterviewServiceImpl) Update(recruiterID, interviewID string, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	interview, err := s.findOwned(recruiterID, interviewID)
	if err != nil {
		return nil, err
	}

	interview.ScheduledAt = req.ScheduledAt
	interview.DurationMinutes = req.DurationMinutes
	interview.Type = req.Type
	interview.MeetingLink = req.MeetingLink
	interview.Location = req.Location
	interview.Notes = req.Notes

	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := interviewToResponse(interview)
	return &resp, nil
}

func (s *InterviewServiceImpl) UpdateStatus(recruiterID, interviewID string, req *dto.UpdateInterviewStatusRequest) (*dto.InterviewResponse, error) {
	interview, err := s.findOwned(recruiterID, interviewID)
	if err != nil {
		return nil, err
	}

	interview.Status = models.InterviewStatus(req.Status)
	if req.Feedback != "" {
		interview.Feedback = req.Feedback
	}

	if err := s.interviewRepo.Update(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := interviewToResponse(interview)
	return &resp, nil
}

func (s *InterviewServiceImpl) Delete(recruiterID, interviewID string) error {
	if _, err := s.findOwned(recruiterID, interviewID); err != nil {
		return err
	}
	if err := s.interviewRepo.Delete(interviewID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InterviewServiceImpl) List(recruiterID string) ([]dto.InterviewResponse, error) {
	interviews, err := s.interviewRepo.FindByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviewsToResponses(interviews), nil
}

func (s *InterviewServiceImpl) ListByStatus(recruiterID, status string) ([]dto.InterviewResponse, error) {
	interviews, err := s.interviewRepo.FindByRecruiterAndStatus(recruiterID, models.InterviewStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviewsToResponses(interviews), nil
}

func (s *InterviewServiceImpl) ListUpcoming(recruiterID string) ([]dto.InterviewResponse, error) {
	interviews, err := s.interviewRepo.FindUpcomingByRecruiter(recruiterID, time.Now())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviewsToResponses(interviews), nil
}

func (s *InterviewServiceImpl) GetByID(recruiterID, interviewID string) (*dto.InterviewResponse, error) {
	interview, err := s.findOwned(recruiterID, interviewID)
	if err != nil {
		return nil, err
	}
	resp := interviewToResponse(interview)
	return &resp, nil
}

func (s *InterviewServiceImpl) findOwned(recruiterID, interviewID string) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrInterviewNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if interview.RecruiterID != recruiterID {
		return nil, apperrors.ErrForbidden
	}
	return interview, nil
}

func interviewToResponse(interview *models.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:              interview.ID,
		ApplicationID:   interview.ApplicationID,
		CandidateID:     interview.Application.CandidateID,
		JobTitle:        interview.Application.Job.Title,
		ScheduledAt:     interview.ScheduledAt,
		DurationMinutes: interview.DurationMinutes,
		Type:            interview.Type,
		Status:          string(interview.Status),
		MeetingLink:     interview.MeetingLink,
		Location:        interview.Location,
		Notes:           interview.Notes,
		Feedback:        interview.Feedback,
	}
}

func interviewsToResponses(interviews []models.Interview) []dto.InterviewResponse {
	responses := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		responses = append(responses, interviewToResponse(&interviews[i]))
	}
	return responses
}
