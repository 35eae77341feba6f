package services

import (
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (string, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register - регистрация нового пользователя.
// Для дизайнера сразу создаются пустой профиль и кастомизация:
// пара должна существовать вместе с первого дня. Всё - одной транзакцией.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (string, error) {
	// bcrypt - CPU-bound, выполняем до открытия транзакции
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.StoreFailure(err, "Error registering user")
		}

		if user.Role != models.UserRoleDesigner {
			return nil
		}

		profile := &models.DesignerProfile{UserID: user.ID}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return apperrors.StoreFailure(err, "Error registering user")
		}

		customization := &models.CustomizationOptions{ProfileID: profile.ID}
		if err := s.profileRepo.CreateCustomization(tx, customization); err != nil {
			return apperrors.StoreFailure(err, "Error registering user")
		}

		return nil
	})
	if txErr != nil {
		return "", txErr
	}

	return user.ID, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StoreFailure(err, "Error logging in")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:  true,
		Token:    token,
		UserRole: user.Role,
		Message:  "Login successful",
	}, nil
}
