package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type DesignerProfile struct {
	BaseModel
	UserID         string `gorm:"type:uuid;uniqueIndex;not null"`
	Bio            string
	ResumeLink     string
	ProfilePicture string
	SocialLinks    datatypes.JSON `gorm:"type:jsonb"` // {"instagram": "...", "behance": "..."}

	// Relations
	Customization *CustomizationOptions `gorm:"foreignKey:ProfileID"`
}

// GetSocialLinks возвращает соц-ссылки как map платформа -> URL
func (p *DesignerProfile) GetSocialLinks() map[string]string {
	links := map[string]string{}
	if len(p.SocialLinks) > 0 {
		_ = json.Unmarshal(p.SocialLinks, &links)
	}
	return links
}

// SetSocialLinks сериализует соц-ссылки в JSON-колонку
func (p *DesignerProfile) SetSocialLinks(links map[string]string) {
	data, _ := json.Marshal(links)
	p.SocialLinks = datatypes.JSON(data)
}

// CustomizationOptions - настройки оформления сайта дизайнера.
// Привязаны к профилю (1:1) и изменяются только вместе с ним.
type CustomizationOptions struct {
	BaseModel
	ProfileID    string `gorm:"type:uuid;uniqueIndex;not null"`
	ThemeChoice  string
	ColorPalette datatypes.JSON `gorm:"type:jsonb"` // {"background": "#fff", "text": "#111"}
	LogoURL      string
}

// GetColorPalette возвращает палитру как map
func (c *CustomizationOptions) GetColorPalette() map[string]string {
	palette := map[string]string{}
	if len(c.ColorPalette) > 0 {
		_ = json.Unmarshal(c.ColorPalette, &palette)
	}
	return palette
}

// SetColorPalette сериализует палитру в JSON-колонку
func (c *CustomizationOptions) SetColorPalette(palette map[string]string) {
	data, _ := json.Marshal(palette)
	c.ColorPalette = datatypes.JSON(data)
}
