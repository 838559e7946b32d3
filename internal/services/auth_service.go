package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"luvo_backend/internal/auth"
	"luvo_backend/internal/email"
	"luvo_backend/internal/logger"
	"luvo_backend/internal/models"
	"luvo_backend/internal/repositories"
	"luvo_backend/internal/services/dto"
	"luvo_backend/pkg/apperrors"
)

const (
	usernameLength      = 16
	usernameAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxUsernameAttempts = 100
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	username, err := s.generateUniqueUsername()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Username:     username,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendWelcome(user.Email, user.Username); err != nil {
		// Signup succeeded; a failed welcome mail is not worth a 500.
		logger.WithError(err).Warn("failed to send welcome email")
	}

	return s.authResponse(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *AuthServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	role := ""
	var rolePtr *string
	if user.Role != nil {
		role = string(*user.Role)
		rolePtr = &role
	}

	token, err := s.tokens.GenerateToken(user.ID, role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Username: user.Username,
			Role:     rolePtr,
		},
	}, nil
}

func (s *AuthServiceImpl) generateUniqueUsername() (string, error) {
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		username, err := randomUsername()
		if err != nil {
			return "", err
		}
		taken, err := s.userRepo.ExistsByUsername(username)
		if err != nil {
			return "", err
		}
		if !taken {
			return username, nil
		}
	}
	return "", fmt.Errorf("unable to generate unique username after %d attempts", maxUsernameAttempts)
}

func randomUsername() (string, error) {
	buf := make([]byte, usernameLength)
	alphabetLen := big.NewInt(int64(len(usernameAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		buf[i] = usernameAlphabet[n.Int64()]
	}
	return string(buf), nil
}
