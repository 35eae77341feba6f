package repositories

import (
	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(db *gorm.DB, message *models.ContactMessage) error
	FindByDesigner(db *gorm.DB, designerID string) ([]models.ContactMessage, error)
}

type ContactRepositoryImpl struct{}

func NewContactRepository() ContactRepository {
	return &ContactRepositoryImpl{}
}

func (r *ContactRepositoryImpl) Create(db *gorm.DB, message *models.ContactMessage) error {
	return db.Create(message).Error
}

func (r *ContactRepositoryImpl) FindByDesigner(db *gorm.DB, designerID string) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Where("designer_id = ?", designerID).
		Order("sent_at DESC").Find(&messages).Error
	return messages, err
}
