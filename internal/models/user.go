package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// Relations
	Profile  *DesignerProfile `gorm:"foreignKey:UserID"`
	Projects []Project        `gorm:"foreignKey:DesignerID"`
}
