package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ContactService interface {
	Submit(db *gorm.DB, req *dto.ContactRequest) error
	ListForDesigner(db *gorm.DB, designerID string) ([]dto.ContactMessageResponse, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	userRepo    repositories.UserRepository
}

func NewContactService(
	contactRepo repositories.ContactRepository,
	userRepo repositories.UserRepository,
) ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

// Submit сохраняет сообщение формы обратной связи.
// Эндпоинт публичный: designer_id недоверенный, проверяем существование цели
// в той же транзакции, что и вставку.
func (s *ContactServiceImpl) Submit(db *gorm.DB, req *dto.ContactRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.userRepo.ExistsByID(tx, req.DesignerID)
		if err != nil {
			return apperrors.StoreFailure(err, "Error sending message")
		}
		if !exists {
			return apperrors.ErrDesignerNotFound
		}

		message := &models.ContactMessage{
			DesignerID:  req.DesignerID,
			SenderName:  req.SenderName,
			SenderEmail: req.SenderEmail,
			Subject:     req.Subject,
			MessageBody: req.MessageBody,
		}
		if err := s.contactRepo.Create(tx, message); err != nil {
			return apperrors.StoreFailure(err, "Error sending message")
		}

		return nil
	})
}

// ListForDesigner - входящие сообщения аутентифицированного дизайнера
func (s *ContactServiceImpl) ListForDesigner(db *gorm.DB, designerID string) ([]dto.ContactMessageResponse, error) {
	messages, err := s.contactRepo.FindByDesigner(db, designerID)
	if err != nil {
		return nil, apperrors.StoreFailure(err, "Error fetching messages")
	}

	responses := make([]dto.ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, dto.ContactMessageResponse{
			MessageID:   m.ID,
			DesignerID:  m.DesignerID,
			SenderName:  m.SenderName,
			SenderEmail: m.SenderEmail,
			Subject:     m.Subject,
			MessageBody: m.MessageBody,
			SentAt:      m.SentAt,
		})
	}
	return responses, nil
}
