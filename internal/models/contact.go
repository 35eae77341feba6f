package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage - сообщение из публичной формы обратной связи.
// Append-only: ни обновления, ни удаления не предусмотрены.
type ContactMessage struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	DesignerID  string `gorm:"type:uuid;not null;index"`
	SenderName  string `gorm:"not null"`
	SenderEmail string `gorm:"not null"`
	Subject     string `gorm:"not null"`
	MessageBody string `gorm:"not null"`
	SentAt      time.Time
}

// BeforeCreate назначает id и серверное время отправки
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.SentAt.IsZero() {
		m.SentAt = time.Now()
	}
	return nil
}
