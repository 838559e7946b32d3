package services

import (
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type RoleService interface {
	GetCurrentRole(userID string) (*dto.RoleResponse, error)
	UpdateRole(userID string, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
}

type RoleServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewRoleService(userRepo repositories.UserRepository) RoleService {
	return &RoleServiceImpl{userRepo: userRepo}
}

func (s *RoleServiceImpl) GetCurrentRole(userID string) (*dto.RoleResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return roleResponse(user), nil
}

func (s *RoleServiceImpl) UpdateRole(userID string, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role := models.UserRole(req.Role)
	if !models.ValidUserRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	roleStr := string(role)
	return &dto.RoleResponse{Role: &roleStr}, nil
}

func roleResponse(user *models.User) *dto.RoleResponse {
	if user.Role == nil {
		return &dto.RoleResponse{Role: nil}
	}
	role := string(*user.Role)
	return &dto.RoleResponse{Role: &role}
}
