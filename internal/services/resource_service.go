package services

import (
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type ResourceService interface {
	Create(counselorID string, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error)
	Update(counselorID, resourceID string, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error)
	Delete(counselorID, resourceID string) error
	List(counselorID string) ([]dto.ResourceResponse, error)
	ListByType(counselorID, resourceType string) ([]dto.ResourceResponse, error)
	ListFeatured(counselorID string) ([]dto.ResourceResponse, error)
	GetByID(counselorID, resourceID string) (*dto.ResourceResponse, error)
}

type ResourceServiceImpl struct {
	resourceRepo repositories.ResourceRepository
}

func NewResourceService(resourceRepo repositories.ResourceRepository) ResourceService {
	return &ResourceServiceImpl{resourceRepo: resourceRepo}
}

func (s *ResourceServiceImpl) Create(counselorID string, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	resource := &models.Resource{
		CounselorID: counselorID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ResourceURL: req.ResourceURL,
		Category:    req.Category,
		IsFeatured:  req.IsFeatured,
	}
	if err := s.resourceRepo.Create(resource); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := resourceToResponse(resource)
	return &resp, nil
}

func (s *ResourceServiceImpl) Update(counselorID, resourceID string, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	resource, err := s.findOwned(counselorID, resourceID)
	if err != nil {
		return nil, err
	}

	resource.Title = req.Title
	resource.Description = req.Description
	resource.Type = req.Type
	resource.ResourceURL = req.ResourceURL
	resource.Category = req.Category
	resource.IsFeatured = req.IsFeatured

	if err := s.resourceRepo.Update(resource); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := resourceToResponse(resource)
	return &resp, nil
}

func (s *ResourceServiceImpl) Delete(counselorID, resourceID string) error {
	if _, err := s.findOwned(counselorID, resourceID); err != nil {
		return err
	}
	if err := s.resourceRepo.Delete(resourceID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ResourceServiceImpl) List(counselorID string) ([]dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.FindByCounselor(counselorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resourcesToResponses(resources), nil
}

func (s *ResourceServiceImpl) ListByType(counselorID, resourceType string) ([]dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.FindByCounselorAndType(counselorID, resourceType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resourcesToResponses(resources), nil
}

func (s *ResourceServiceImpl) ListFeatured(counselorID string) ([]dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.FindFeaturedByCounselor(counselorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resourcesToResponses(resources), nil
}

func (s *ResourceServiceImpl) GetByID(counselorID, resourceID string) (*dto.ResourceResponse, error) {
	resource, err := s.findOwned(counselorID, resourceID)
	if err != nil {
		return nil, err
	}
	resp := resourceToResponse(resource)
	return &resp, nil
}

func (s *ResourceServiceImpl) findOwned(counselorID, resourceID string) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(resourceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResourceNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if resource.CounselorID != counselorID {
		return nil, apperrors.ErrForbidden
	}
	return resource, nil
}

func resourceToResponse(resource *models.Resource) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		Type:        resource.Type,
		ResourceURL: resource.ResourceURL,
		Category:    resource.Category,
		IsFeatured:  resource.IsFeatured,
	}
}

func resourcesToResponses(resources []models.Resource) []dto.ResourceResponse {
	responses := make([]dto.ResourceResponse, 0, len(resources))
	for i := range resources {
		responses = append(responses, resourceToResponse(&resources[i]))
	}
	return responses
}
