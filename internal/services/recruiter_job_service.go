package services

import (
	"time"

	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

// RecruiterJobService manages a recruiter's own job postings.
type RecruiterJobService interface {
	CreateJob(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	UpdateJob(recruiterID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	UpdateJobStatus(recruiterID, jobID string, req *dto.UpdateJobStatusRequest) (*dto.JobResponse, error)
	DeleteJob(recruiterID, jobID string) error
	ListJobs(recruiterID string) ([]dto.JobResponse, error)
	ListJobsByStatus(recruiterID, status string) ([]dto.JobResponse, error)
	GetJob(recruiterID, jobID string) (*dto.JobResponse, error)
}

type RecruiterJobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewRecruiterJobService(jobRepo repositories.JobRepository) RecruiterJobService {
	return &RecruiterJobServiceImpl{jobRepo: jobRepo}
}

func (s *RecruiterJobServiceImpl) CreateJob(recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	now := time.Now()
	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		RecruiterID:     &recruiterID,
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Type:            req.Type,
		ExperienceLevel: req.ExperienceLevel,
		Description:     req.Description,
		Requirements:    stringsToJSON(req.Requirements),
		RequiredSkills:  stringsToJSON(req.RequiredSkills),
		Salary:          req.Salary,
		CareerTrack:     req.CareerTrack,
		PostedDate:      &now,
		Deadline:        req.Deadline,
		Status:          status,
		CoinCost:        req.CoinCost,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := jobToResponse(job)
	return &resp, nil
}

func (s *RecruiterJobServiceImpl) UpdateJob(recruiterID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findOwned(recruiterID, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Location = req.Location
	job.Type = req.Type
	job.ExperienceLevel = req.ExperienceLevel
	job.Description = req.Description
	job.Requirements = stringsToJSON(req.Requirements)
	job.RequiredSkills = stringsToJSON(req.RequiredSkills)
	job.Salary = req.Salary
	job.CareerTrack = req.CareerTrack
	job.Deadline = req.Deadline
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	job.CoinCost = req.CoinCost

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := jobToResponse(job)
	return &resp, nil
}

func (s *RecruiterJobServiceImpl) UpdateJobStatus(recruiterID, jobID string, req *dto.UpdateJobStatusRequest) (*dto.JobResponse, error) {
	job, err := s.findOwned(recruiterID, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateStatus(jobID, models.JobStatus(req.Status)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Status = models.JobStatus(req.Status)
	resp := jobToResponse(job)
	return &resp, nil
}

func (s *RecruiterJobServiceImpl) DeleteJob(recruiterID, jobID string) error {
	if _, err := s.findOwned(recruiterID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RecruiterJobServiceImpl) ListJobs(recruiterID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByRecruiter(recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobsToResponses(jobs), nil
}

func (s *RecruiterJobServiceImpl) ListJobsByStatus(recruiterID, status string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByRecruiterAndStatus(recruiterID, models.JobStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobsToResponses(jobs), nil
}

func (s *RecruiterJobServiceImpl) GetJob(recruiterID, jobID string) (*dto.JobResponse, error) {
	job, err := s.findOwned(recruiterID, jobID)
	if err != nil {
		return nil, err
	}
	resp := jobToResponse(job)
	return &resp, nil
}

func (s *RecruiterJobServiceImpl) findOwned(recruiterID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.RecruiterID == nil || *job.RecruiterID != recruiterID {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}
