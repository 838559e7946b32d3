package services

import (
	"time"

	"gorm.io/gorm"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(candidateID, jobID string) (*dto.ApplicationResponse, error)
	ListByCandidate(candidateID string) ([]dto.ApplicationResponse, error)
	HasApplied(candidateID, jobID string) (*dto.ApplicationCheckResponse, error)
	ListByRecruiter(recruiterID string) ([]dto.ApplicationResponse, error)
	ListByRecruiterAndStatus(recruiterID, status string) ([]dto.ApplicationResponse, error)
	GetByID(recruiterID, applicationID string) (*dto.ApplicationResponse, error)
	UpdateStatus(recruiterID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	db       *gorm.DB
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	coinRepo repositories.CoinRepository
}

func NewApplicationService(
	db *gorm.DB,
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	coinRepo repositories.CoinRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		db:       db,
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		coinRepo: coinRepo,
	}
}

// Apply runs the full application workflow: job lookup, duplicate
// check, coin deduction, then creation in pending. The duplicate check
// runs before the deduction so a rejected duplicate never costs coins.
// Deduction and creation share one transaction.
func (s *ApplicationServiceImpl) Apply(candidateID, jobID string) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.appRepo.ExistsByCandidateAndJob(candidateID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	cost := 0
	if job.CoinCost != nil && *job.CoinCost > 0 {
		cost = *job.CoinCost
		// Make sure a first-time applicant has an account to charge.
		if _, err := s.coinRepo.GetOrCreate(candidateID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	application := &models.JobApplication{
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      models.ApplicationStatusPending,
		AppliedAt:   time.Now(),
	}
	if cost > 0 {
		application.CoinsDeducted = &cost
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if cost > 0 {
			if err := s.coinRepo.DeductTx(tx, candidateID, cost); err != nil {
				return err
			}
		}
		return s.appRepo.CreateTx(tx, application)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrInsufficientCoins) {
			return nil, apperrors.ErrInsufficientCoins
		}
		return nil, apperrors.InternalError(err)
	}

	resp := applicationToResponse(application, false)
	return &resp, nil
}

func (s *ApplicationServiceImpl) ListByCandidate(candidateID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationsToResponses(apps), nil
}

func (s *ApplicationServiceImpl) HasApplied(candidateID, jobID string) (*dto.ApplicationCheckResponse, error) {
	exists, err := s.appRepo.ExistsByCandidateAndJob(candidateID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ApplicationCheckResponse{HasApplied: exists}, nil
}

func (s *ApplicationServiceImpl) ListByRecruiter(recruiterID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationsToResponses(apps), nil
}

func (s *ApplicationServiceImpl) ListByRecruiterAndStatus(recruiterID, status string) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByRecruiterAndStatus(recruiterID, models.ApplicationStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applicationsToResponses(apps), nil
}

func (s *ApplicationServiceImpl) GetByID(recruiterID, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.findOwned(recruiterID, applicationID)
	if err != nil {
		return nil, err
	}
	resp := applicationToResponse(app, true)
	return &resp, nil
}

// UpdateStatus is an unconditional overwrite once ownership of the
// job is verified.
func (s *ApplicationServiceImpl) UpdateStatus(recruiterID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	app, err := s.findOwned(recruiterID, applicationID)
	if err != nil {
		return nil, err
	}

	if err := s.appRepo.UpdateStatus(applicationID, models.ApplicationStatus(req.Status)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	app.Status = models.ApplicationStatus(req.Status)
	resp := applicationToResponse(app, true)
	return &resp, nil
}

func (s *ApplicationServiceImpl) findOwned(recruiterID, applicationID string) (*models.JobApplication, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if app.Job.RecruiterID == nil || *app.Job.RecruiterID != recruiterID {
		return nil, apperrors.ErrForbidden
	}
	return app, nil
}

func applicationsToResponses(apps []models.JobApplication) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, applicationToResponse(&apps[i], true))
	}
	return responses
}
