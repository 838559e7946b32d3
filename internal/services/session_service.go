package services

import (
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type SessionService interface {
	Create(counselorID string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Update(counselorID, sessionID string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	UpdateStatus(counselorID, sessionID string, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error)
	Delete(counselorID, sessionID string) error
	List(counselorID string) ([]dto.SessionResponse, error)
	ListByStatus(counselorID, status string) ([]dto.SessionResponse, error)
	GetByID(counselorID, sessionID string) (*dto.SessionResponse, error)
}

type SessionServiceImpl struct {
	sessionRepo repositories.SessionRepository
	studentRepo repositories.StudentRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository, studentRepo repositories.StudentRepository) SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo, studentRepo: studentRepo}
}

// Create books a session and stamps the student's LastSessionAt.
func (s *SessionServiceImpl) Create(counselorID string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	student, err := s.studentRepo.FindByID(req.StudentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if student.CounselorID != counselorID {
		return nil, apperrors.ErrForbidden
	}

	session := &models.CounselingSession{
		StudentID:       req.StudentID,
		CounselorID:     counselorID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Type:            models.SessionType(req.Type),
		Status:          models.SessionStatusScheduled,
		MeetingLink:     req.MeetingLink,
		Location:        req.Location,
		Notes:           req.Notes,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.studentRepo.TouchLastSession(req.StudentID, req.ScheduledAt); err != nil {
		return nil, apperrors.InternalError(err)
	}

	session.Student = *student
	resp := sessionToResponse(session)
	return &resp, nil
}

func (s *SessionServiceImpl) Update(counselorID, sessionID string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.findOwned(counselorID, sessionID)
	if err != nil {
		return nil, err
	}

	session.ScheduledAt = req.ScheduledAt
	session.DurationMinutes = req.DurationMinutes
	session.Type = models.SessionType(req.Type)
	session.MeetingLink = req.MeetingLink
	session.Location = req.Location
	session.Notes = req.Notes

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := sessionToResponse(session)
	return &resp, nil
}

func (s *SessionServiceImpl) UpdateStatus(counselorID, sessionID string, req *dto.UpdateSessionStatusRequest) (*dto.SessionResponse, error) {
	session, err := s.findOwned(counselorID, sessionID)
	if err != nil {
		return nil, err
	}

	session.Status = models.SessionStatus(req.Status)
	if req.Feedback != "" {
		session.Feedback = req.Feedback
	}

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := sessionToResponse(session)
	return &resp, nil
}

func (s *SessionServiceImpl) Delete(counselorID, sessionID string) error {
	if _, err := s.findOwned(counselorID, sessionID); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(sessionID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SessionServiceImpl) List(counselorID string) ([]dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindByCounselor(counselorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sessionsToResponses(sessions), nil
}

func (s *SessionServiceImpl) ListByStatus(counselorID, status string) ([]dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindByCounselorAndStatus(counselorID, models.SessionStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sessionsToResponses(sessions), nil
}

func (s *SessionServiceImpl) GetByID(counselorID, sessionID string) (*dto.SessionResponse, error) {
	session, err := s.findOwned(counselorID, sessionID)
	if err != nil {
		return nil, err
	}
	resp := sessionToResponse(session)
	return &resp, nil
}

func (s *SessionServiceImpl) findOwned(counselorID, sessionID string) (*models.CounselingSession, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if session.CounselorID != counselorID {
		return nil, apperrors.ErrForbidden
	}
	return session, nil
}

func sessionToResponse(session *models.CounselingSession) dto.SessionResponse {
	return dto.SessionResponse{
		ID:              session.ID,
		StudentID:       session.StudentID,
		StudentName:     session.Student.User.Username,
		ScheduledAt:     session.ScheduledAt,
		DurationMinutes: session.DurationMinutes,
		Type:            string(session.Type),
		Status:          string(session.Status),
		MeetingLink:     session.MeetingLink,
		Location:        session.Location,
		Notes:           session.Notes,
		Feedback:        session.Feedback,
	}
}

func sessionsToResponses(sessions []models.CounselingSession) []dto.SessionResponse {
	responses := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, sessionToResponse(&sessions[i]))
	}
	return responses
}
