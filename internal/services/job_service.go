package services

import (
	"sort"

	"luvo_backend/internal/algorithms"
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	matchedJobLimit = 200
)

// JobService is the candidate-facing job catalog.
type JobService interface {
	ListJobs(page, pageSize int) (*dto.JobListResponse, error)
	SearchJobs(query *dto.JobSearchQuery) (*dto.JobListResponse, error)
	GetJobByID(jobID string) (*dto.JobResponse, error)
	MatchedJobs(candidateID string) ([]dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobRepository, profileRepo repositories.ProfileRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, profileRepo: profileRepo}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func (s *JobServiceImpl) ListJobs(page, pageSize int) (*dto.JobListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	jobs, err := s.jobRepo.FindActive(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.jobRepo.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:     jobsToResponses(jobs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *JobServiceImpl) SearchJobs(query *dto.JobSearchQuery) (*dto.JobListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	filter := repositories.JobFilter{
		Query:           query.Query,
		Location:        query.Location,
		Type:            query.Type,
		ExperienceLevel: query.ExperienceLevel,
		CareerTrack:     query.CareerTrack,
	}
	jobs, total, err := s.jobRepo.Search(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:     jobsToResponses(jobs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetJobByID bumps the view counter and returns the job including the
// view just recorded.
func (s *JobServiceImpl) GetJobByID(jobID string) (*dto.JobResponse, error) {
	if err := s.jobRepo.IncrementViews(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := jobToResponse(job)
	return &resp, nil
}

// MatchedJobs scores every active job against the candidate's profile
// and returns them sorted by score descending. Scores are computed per
// call and never stored.
func (s *JobServiceImpl) MatchedJobs(candidateID string) ([]dto.JobResponse, error) {
	profile, err := s.profileRepo.FindByUserID(candidateID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.FindActive(matchedJobLimit, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matchProfile := algorithms.MatchProfile{
		CareerTrack:     profile.PreferredCareerTrack,
		ExperienceLevel: profile.ExperienceLevel,
	}
	for _, skill := range profile.Skills {
		matchProfile.Skills = append(matchProfile.Skills, skill.Name)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		result := algorithms.ScoreJob(matchProfile, algorithms.MatchJob{
			RequiredSkills:  jsonToStrings(job.RequiredSkills),
			CareerTrack:     job.CareerTrack,
			ExperienceLevel: job.ExperienceLevel,
		})

		resp := jobToResponse(job)
		score := result.Score
		resp.MatchScore = &score
		resp.MatchReasons = result.Reasons
		resp.MatchedSkills = result.MatchedSkills
		responses = append(responses, resp)
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return *responses[i].MatchScore > *responses[j].MatchScore
	})
	return responses, nil
}

func jobsToResponses(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, jobToResponse(&jobs[i]))
	}
	return responses
}
