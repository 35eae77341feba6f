package database

import (
	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет AutoMigrate для всех моделей приложения.
// Порядок важен: сначала родительские таблицы, потом зависимые.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DesignerProfile{},
		&models.CustomizationOptions{},
		&models.Project{},
		&models.ProjectMedia{},
		&models.ContactMessage{},
	)
}
