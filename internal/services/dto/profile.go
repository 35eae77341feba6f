package dto

import (
	"portfolio_backend/internal/models"
)

// ColorPaletteInput - структурированная палитра
type ColorPaletteInput struct {
	Background string `json:"background"`
	Text       string `json:"text"`
}

// CustomizationInput - вложенный payload настроек оформления
type CustomizationInput struct {
	ThemeChoice  string            `json:"theme_choice" binding:"required"`
	ColorPalette ColorPaletteInput `json:"color_palette"`
	LogoURL      string            `json:"logo_url"`
}

// UpdateProfileRequest - запрос совместного обновления профиля и кастомизации.
// Обе половины пишутся одной транзакцией.
type UpdateProfileRequest struct {
	Bio            string             `json:"bio"`
	ResumeLink     string             `json:"resume_link"`
	ProfilePicture string             `json:"profile_picture"`
	SocialLinks    map[string]string  `json:"social_media_links"`
	Customization  CustomizationInput `json:"customization" binding:"required"`
}

// ProfileResponse - профиль в ответе
type ProfileResponse struct {
	ProfileID      string            `json:"profile_id"`
	UserID         string            `json:"user_id"`
	Bio            string            `json:"bio"`
	ResumeLink     string            `json:"resume_link"`
	ProfilePicture string            `json:"profile_picture"`
	SocialLinks    map[string]string `json:"social_media_links"`
}

// CustomizationResponse - настройки оформления в ответе
type CustomizationResponse struct {
	ThemeChoice  string            `json:"theme_choice"`
	ColorPalette map[string]string `json:"color_palette"`
	LogoURL      string            `json:"logo_url"`
}

// GetProfileResponse - агрегат "профиль + кастомизация"
type GetProfileResponse struct {
	Profile       ProfileResponse       `json:"profile"`
	Customization CustomizationResponse `json:"customization"`
}

// NewGetProfileResponse маппит модель (с предзагруженной кастомизацией) в ответ
func NewGetProfileResponse(p *models.DesignerProfile) *GetProfileResponse {
	return &GetProfileResponse{
		Profile: ProfileResponse{
			ProfileID:      p.ID,
			UserID:         p.UserID,
			Bio:            p.Bio,
			ResumeLink:     p.ResumeLink,
			ProfilePicture: p.ProfilePicture,
			SocialLinks:    p.GetSocialLinks(),
		},
		Customization: CustomizationResponse{
			ThemeChoice:  p.Customization.ThemeChoice,
			ColorPalette: p.Customization.GetColorPalette(),
			LogoURL:      p.Customization.LogoURL,
		},
	}
}
