package services

import (
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

type StudentService interface {
	Create(counselorID string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Update(counselorID, studentID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	List(counselorID string) ([]dto.StudentResponse, error)
	ListByStatus(counselorID, status string) ([]dto.StudentResponse, error)
	GetByID(counselorID, studentID string) (*dto.StudentResponse, error)
}

type StudentServiceImpl struct {
	studentRepo repositories.StudentRepository
	userRepo    repositories.UserRepository
}

func NewStudentService(studentRepo repositories.StudentRepository, userRepo repositories.UserRepository) StudentService {
	return &StudentServiceImpl{studentRepo: studentRepo, userRepo: userRepo}
}

func (s *StudentServiceImpl) Create(counselorID string, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	status := models.StudentStatusActive
	if req.Status != "" {
		status = models.StudentStatus(req.Status)
	}

	student := &models.Student{
		UserID:      user.ID,
		CounselorID: counselorID,
		Program:     req.Program,
		Year:        req.Year,
		GPA:         req.GPA,
		Status:      status,
	}
	if err := s.studentRepo.Create(student); err != nil {
		return nil, apperrors.InternalError(err)
	}

	student.User = *user
	resp := studentToResponse(student)
	return &resp, nil
}

func (s *StudentServiceImpl) Update(counselorID, studentID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.findOwned(counselorID, studentID)
	if err != nil {
		return nil, err
	}

	student.Program = req.Program
	student.Year = req.Year
	student.GPA = req.GPA
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}

	if err := s.studentRepo.Update(student); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := studentToResponse(student)
	return &resp, nil
}

func (s *StudentServiceImpl) List(counselorID string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindByCounselor(counselorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return studentsToResponses(students), nil
}

func (s *StudentServiceImpl) ListByStatus(counselorID, status string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindByCounselorAndStatus(counselorID, models.StudentStatus(status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return studentsToResponses(students), nil
}

func (s *StudentServiceImpl) GetByID(counselorID, studentID string) (*dto.StudentResponse, error) {
	student, err := s.findOwned(counselorID, studentID)
	if err != nil {
		return nil, err
	}
	resp := studentToResponse(student)
	return &resp, nil
}

func (s *StudentServiceImpl) findOwned(counselorID, studentID string) (*models.Student, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if student.CounselorID != counselorID {
		return nil, apperrors.ErrForbidden
	}
	return student, nil
}

func studentToResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:            student.ID,
		UserID:        student.UserID,
		Username:      student.User.Username,
		Email:         student.User.Email,
		Program:       student.Program,
		Year:          student.Year,
		GPA:           student.GPA,
		Status:        string(student.Status),
		LastSessionAt: student.LastSessionAt,
	}
}

func studentsToResponses(students []models.Student) []dto.StudentResponse {
	responses := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, studentToResponse(&students[i]))
	}
	return responses
}
