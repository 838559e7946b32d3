package services

import (
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type CareerPlanService interface {
	Create(counselorID string, req *dto.CreateCareerPlanRequest) (*dto.CareerPlanResponse, error)
	Update(counselorID, planID string, req *dto.UpdateCareerPlanRequest) (*dto.CareerPlanResponse, error)
	Delete(counselorID, planID string) error
	List(counselorID string) ([]dto.CareerPlanResponse, error)
	ListByStatus(counselorID, status string) ([]dto.CareerPlanResponse, error)
	GetByID(counselorID, planID string) (*dto.CareerPlanResponse, error)
}

type CareerPlanServiceImpl struct {
	planRepo    repositories.CareerPlanRepository
	studentRepo repositories.StudentRepository
}

func NewCareerPlanService(planRepo repositories.CareerPlanRepository, studentRepo repositories.StudentRepository) CareerPlanService {
	return &CareerPlanServiceImpl{planRepo: planRepo, studentRepo: studentRepo}
}

func (s *CareerPlanServiceImpl) Create(counselorID string, req *dto.CreateCareerPlanRequest) (*dto.CareerPlanResponse, error) {
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

	status := models.PlanStatusDraft
	if req.Status != "" {
		status = models.PlanStatus(req.Status)
	}

	plan := &models.CareerPlan{
		StudentID:   req.StudentID,
		CounselorID: counselorID,
		Title:       req.Title,
		Goals:       stringsToJSON(req.Goals),
		Timeline:    req.Timeline,
		ActionItems: stringsToJSON(req.ActionItems),
		Status:      status,
	}
	if err := s.planRepo.Create(plan); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := planToResponse(plan)
	return &resp, nil
}

func (s *CareerPlanServiceImpl) Update(counselorID, planID string, req *dto.UpdateCareerPlanRequest) (*dto.CareerPlanResponse, error) {
	plan, err := s.findOwned(counselorID, planID)
	if err != nil {
		return nil, err
	}

	plan.Title = req.Title
	plan.Goals = stringsToJSON(req.Goals)
	plan.Timeline = req.Timeline
	plan.ActionItems = stringsToJSON(req.ActionItems)
	if req.Status != "" {
		plan.Status = models.PlanStatus(req.Status)
	}

	if err := s.planRepo.Update(plan); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := planToResponse(plan)
	return &resp, nil
}

func (s *CareerPlanServiceImpl) Delete(counselorID, planID string) error {
	if _, err := s.findOwned(counselorID, planID); err != nil {
		return err
	}
	if err := s.planRepo.Delete(planID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CareerPlanServiceImpl) List(counselorID string) ([]dto.CareerPlanResponse, error) {
	plans, err := s.planRepo.FindByCounselor(counselorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plansToResponses(plans), nil
}

func (s *CareerPlanServiceImpl) ListByStatus(counselorID, status string) ([]dto.CareerPlanResponse, error) {
	plans, err := s.planRepo.FindByCounselorAndStatus(counselorID, models.PlanStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return plansToResponses(plans), nil
}

func (s *CareerPlanServiceImpl) GetByID(counselorID, planID string) (*dto.CareerPlanResponse, error) {
	plan, err := s.findOwned(counselorID, planID)
	if err != nil {
		return nil, err
	}
	resp := planToResponse(plan)
	return &resp, nil
}

func (s *CareerPlanServiceImpl) findOwned(counselorID, planID string) (*models.CareerPlan, error) {
	plan, err := s.planRepo.FindByID(planID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if plan.CounselorID != counselorID {
		return nil, apperrors.ErrForbidden
	}
	return plan, nil
}

func planToResponse(plan *models.CareerPlan) dto.CareerPlanResponse {
	return dto.CareerPlanResponse{
		ID:          plan.ID,
		StudentID:   plan.StudentID,
		Title:       plan.Title,
		Goals:       jsonToStrings(plan.Goals),
		Timeline:    plan.Timeline,
		ActionItems: jsonToStrings(plan.ActionItems),
		Status:      string(plan.Status),
	}
}

func plansToResponses(plans []models.CareerPlan) []dto.CareerPlanResponse {
	responses := make([]dto.CareerPlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, planToResponse(&plans[i]))
	}
	return responses
}
