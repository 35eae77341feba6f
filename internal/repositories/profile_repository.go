package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound       = errors.New("designer profile not found")
	ErrCustomizationNotFound = errors.New("customization options not found")
)

type ProfileRepository interface {
	FindByUser(db *gorm.DB, userID string) (*models.DesignerProfile, error)
	Create(db *gorm.DB, profile *models.DesignerProfile) error
	CreateCustomization(db *gorm.DB, customization *models.CustomizationOptions) error
	UpdateProfile(db *gorm.DB, profile *models.DesignerProfile) error
	UpdateCustomization(db *gorm.DB, customization *models.CustomizationOptions) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// FindByUser возвращает профиль вместе с кастомизацией.
// Отсутствие любой из половинок - ошибка: пара существует только вместе.
func (r *ProfileRepositoryImpl) FindByUser(db *gorm.DB, userID string) (*models.DesignerProfile, error) {
	var profile models.DesignerProfile
	err := db.Preload("Customization").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if profile.Customization == nil {
		return nil, ErrCustomizationNotFound
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.DesignerProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateCustomization(db *gorm.DB, customization *models.CustomizationOptions) error {
	return db.Create(customization).Error
}

func (r *ProfileRepositoryImpl) UpdateProfile(db *gorm.DB, profile *models.DesignerProfile) error {
	result := db.Model(&models.DesignerProfile{}).
		Where("user_id = ?", profile.UserID).
		Select("Bio", "ResumeLink", "ProfilePicture", "SocialLinks").
		Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateCustomization(db *gorm.DB, customization *models.CustomizationOptions) error {
	result := db.Model(&models.CustomizationOptions{}).
		Where("profile_id = ?", customization.ProfileID).
		Select("ThemeChoice", "ColorPalette", "LogoURL").
		Updates(customization)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomizationNotFound
	}
	return nil
}
