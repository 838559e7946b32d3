package services

import (
	"time"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type SavedJobService interface {
	SaveJob(candidateID, jobID string) (*dto.SavedJobResponse, error)
	UnsaveJob(candidateID, jobID string) error
	ListSavedJobs(candidateID string) ([]dto.SavedJobResponse, error)
	IsSaved(candidateID, jobID string) (*dto.SavedJobCheckResponse, error)
}

type SavedJobServiceImpl struct {
	savedRepo repositories.SavedJobRepository
	jobRepo   repositories.JobRepository
}

func NewSavedJobService(savedRepo repositories.SavedJobRepository, jobRepo repositories.JobRepository) SavedJobService {
	return &SavedJobServiceImpl{savedRepo: savedRepo, jobRepo: jobRepo}
}

func (s *SavedJobServiceImpl) SaveJob(candidateID, jobID string) (*dto.SavedJobResponse, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.savedRepo.ExistsByCandidateAndJob(candidateID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrJobAlreadySaved
	}

	saved := &models.SavedJob{
		CandidateID: candidateID,
		JobID:       jobID,
		SavedAt:     time.Now(),
	}
	if err := s.savedRepo.Create(saved); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SavedJobResponse{
		ID:      saved.ID,
		JobID:   saved.JobID,
		SavedAt: saved.SavedAt,
	}, nil
}

func (s *SavedJobServiceImpl) UnsaveJob(candidateID, jobID string) error {
	err := s.savedRepo.Delete(candidateID, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.NewNotFoundError("Saved job not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SavedJobServiceImpl) ListSavedJobs(candidateID string) ([]dto.SavedJobResponse, error) {
	saved, err := s.savedRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		resp := dto.SavedJobResponse{
			ID:      saved[i].ID,
			JobID:   saved[i].JobID,
			SavedAt: saved[i].SavedAt,
		}
		if saved[i].Job.ID != "" {
			job := jobToResponse(&saved[i].Job)
			resp.Job = &job
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *SavedJobServiceImpl) IsSaved(candidateID, jobID string) (*dto.SavedJobCheckResponse, error) {
	exists, err := s.savedRepo.ExistsByCandidateAndJob(candidateID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.SavedJobCheckResponse{IsSaved: exists}, nil
}
