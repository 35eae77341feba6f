package services

import (
	"errors"
	"testing"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// registerDesigner - регистрирует дизайнера, профиль и кастомизация создаются автоматически
func registerDesigner(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	authSvc := NewAuthService(repositories.NewUserRepository(), repositories.NewProfileRepository())
	userID, err := authSvc.Register(db, &dto.RegisterRequest{
		Email:    email,
		Password: "secret-password",
		Role:     models.UserRoleDesigner,
	})
	require.NoError(t, err)
	return userID
}

// failingCustomizationRepo - репозиторий, у которого падает запись кастомизации
type failingCustomizationRepo struct {
	repositories.ProfileRepository
}

func (r *failingCustomizationRepo) UpdateCustomization(db *gorm.DB, c *models.CustomizationOptions) error {
	return errors.New("forced customization failure")
}

func TestRegisterDesigner_ProvisionsProfilePair(t *testing.T) {
	db := newServiceTestDB(t)
	userID := registerDesigner(t, db, "pair@example.com")

	var profile models.DesignerProfile
	require.NoError(t, db.Preload("Customization").First(&profile, "user_id = ?", userID).Error)
	require.NotNil(t, profile.Customization)
	assert.Equal(t, profile.ID, profile.Customization.ProfileID)
}

func TestUpdateProfile_WritesBothHalves(t *testing.T) {
	db := newServiceTestDB(t)
	userID := registerDesigner(t, db, "both@example.com")
	svc := NewProfileService(repositories.NewProfileRepository())

	err := svc.Update(db, userID, &dto.UpdateProfileRequest{
		Bio:         "UX designer from Almaty",
		ResumeLink:  "https://example.com/cv.pdf",
		SocialLinks: map[string]string{"behance": "https://behance.net/me"},
		Customization: dto.CustomizationInput{
			ThemeChoice:  "dark",
			ColorPalette: dto.ColorPaletteInput{Background: "#111111", Text: "#eeeeee"},
			LogoURL:      "logo.svg",
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(db, userID)
	require.NoError(t, err)
	assert.Equal(t, "UX designer from Almaty", got.Profile.Bio)
	assert.Equal(t, "https://behance.net/me", got.Profile.SocialLinks["behance"])
	assert.Equal(t, "dark", got.Customization.ThemeChoice)
	assert.Equal(t, "#111111", got.Customization.ColorPalette["background"])
}

func TestUpdateProfile_RollsBackOnCustomizationFailure(t *testing.T) {
	db := newServiceTestDB(t)
	userID := registerDesigner(t, db, "rollback@example.com")
	svc := NewProfileService(&failingCustomizationRepo{repositories.NewProfileRepository()})

	err := svc.Update(db, userID, &dto.UpdateProfileRequest{
		Bio:           "Should never land",
		Customization: dto.CustomizationInput{ThemeChoice: "light"},
	})
	require.Error(t, err)

	// Профиль не должен быть обновлен, раз кастомизация не записалась
	var profile models.DesignerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", userID).Error)
	assert.Empty(t, profile.Bio)
}

func TestGetProfile_MissingForUser(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewProfileService(repositories.NewProfileRepository())

	_, err := svc.Get(db, "no-such-user")
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
