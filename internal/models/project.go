package models

type Project struct {
	BaseModel
	DesignerID  string `gorm:"type:uuid;not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"index"`

	// Relations
	Media []ProjectMedia `gorm:"foreignKey:ProjectID"`
}

// ProjectMedia - упорядоченный медиа-элемент проекта.
// DisplayOrder плотный, с единицы, уникален внутри проекта.
type ProjectMedia struct {
	BaseModel
	ProjectID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_project_display_order"`
	MediaType    MediaType `gorm:"type:varchar(20);not null"`
	MediaURL     string    `gorm:"not null"`
	DisplayOrder int       `gorm:"not null;uniqueIndex:idx_project_display_order"`
}
