package services

import (
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type ProfileService interface {
	SaveProfile(userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(userID string) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// SaveProfile creates or fully replaces the candidate's profile. Owned
// lists (skills, projects, experiences, educations) are rebuilt from
// the request, never merged.
func (s *ProfileServiceImpl) SaveProfile(userID string, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	profile := &models.CandidateProfile{
		UserID:               userID,
		FullName:             req.FullName,
		EducationLevel:       req.EducationLevel,
		ExperienceLevel:      req.ExperienceLevel,
		PreferredCareerTrack: req.PreferredCareerTrack,
		TargetRole:           req.TargetRole,
		CVFileName:           req.CVFileName,
	}

	for _, name := range req.Skills {
		profile.Skills = append(profile.Skills, models.Skill{Name: name})
	}
	for _, p := range req.Projects {
		profile.Projects = append(profile.Projects, models.Project{
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         p.Link,
		})
	}
	for _, e := range req.Experiences {
		profile.Experiences = append(profile.Experiences, models.WorkExperience{
			Company:     e.Company,
			Position:    e.Position,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}
	for _, e := range req.Educations {
		profile.Educations = append(profile.Educations, models.Education{
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			GPA:         e.GPA,
		})
	}

	if err := s.profileRepo.Save(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(userID)
}

func (s *ProfileServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profileToResponse(profile), nil
}

func profileToResponse(profile *models.CandidateProfile) *dto.ProfileResponse {
	resp := &dto.ProfileResponse{
		ID:                   profile.ID,
		UserID:               profile.UserID,
		FullName:             profile.FullName,
		EducationLevel:       profile.EducationLevel,
		ExperienceLevel:      profile.ExperienceLevel,
		PreferredCareerTrack: profile.PreferredCareerTrack,
		TargetRole:           profile.TargetRole,
		CVFileName:           profile.CVFileName,
		Skills:               []string{},
		Projects:             []dto.ProjectResponse{},
		Experiences:          []dto.ExperienceResponse{},
		Educations:           []dto.EducationResponse{},
	}
	for _, sk := range profile.Skills {
		resp.Skills = append(resp.Skills, sk.Name)
	}
	for _, p := range profile.Projects {
		resp.Projects = append(resp.Projects, dto.ProjectResponse{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         p.Link,
		})
	}
	for _, e := range profile.Experiences {
		resp.Experiences = append(resp.Experiences, dto.ExperienceResponse{
			ID:          e.ID,
			Company:     e.Company,
			Position:    e.Position,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			Description: e.Description,
		})
	}
	for _, e := range profile.Educations {
		resp.Educations = append(resp.Educations, dto.EducationResponse{
			ID:          e.ID,
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Current:     e.Current,
			GPA:         e.GPA,
		})
	}
	return resp
}
