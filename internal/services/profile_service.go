package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	Get(db *gorm.DB, userID string) (*dto.GetProfileResponse, error)
	Update(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

// Get возвращает профиль вместе с кастомизацией.
// Если любой из половинок нет - 404, частичный объект не отдаем.
func (s *ProfileServiceImpl) Get(db *gorm.DB, userID string) (*dto.GetProfileResponse, error) {
	profile, err := s.profileRepo.FindByUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) ||
			apperrors.Is(err, repositories.ErrCustomizationNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.StoreFailure(err, "Error fetching profile")
	}
	return dto.NewGetProfileResponse(profile), nil
}

// Update пишет профиль и кастомизацию как единое целое.
// Сбой любой половины откатывает обе: частичная запись - нарушение инварианта.
func (s *ProfileServiceImpl) Update(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		current, err := s.profileRepo.FindByUser(tx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) ||
				apperrors.Is(err, repositories.ErrCustomizationNotFound) {
				return apperrors.ErrProfileNotFound
			}
			return apperrors.StoreFailure(err, "Error updating profile")
		}

		profile := &models.DesignerProfile{
			UserID:         userID,
			Bio:            req.Bio,
			ResumeLink:     req.ResumeLink,
			ProfilePicture: req.ProfilePicture,
		}
		profile.SetSocialLinks(req.SocialLinks)

		if err := s.profileRepo.UpdateProfile(tx, profile); err != nil {
			return apperrors.StoreFailure(err, "Error updating profile")
		}

		customization := &models.CustomizationOptions{
			ProfileID:   current.ID,
			ThemeChoice: req.Customization.ThemeChoice,
			LogoURL:     req.Customization.LogoURL,
		}
		customization.SetColorPalette(map[string]string{
			"background": req.Customization.ColorPalette.Background,
			"text":       req.Customization.ColorPalette.Text,
		})

		if err := s.profileRepo.UpdateCustomization(tx, customization); err != nil {
			return apperrors.StoreFailure(err, "Error updating profile")
		}

		return nil
	})
}
