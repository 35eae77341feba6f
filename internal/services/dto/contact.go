package dto

import (
	"time"
)

// ContactRequest - публичная форма обратной связи.
// designer_id - недоверенный ввод, существование цели проверяет сервис.
type ContactRequest struct {
	DesignerID  string `json:"designer_id" binding:"required,uuid"`
	SenderName  string `json:"sender_name" binding:"required"`
	SenderEmail string `json:"sender_email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	MessageBody string `json:"message_body" binding:"required"`
}

// ContactMessageResponse - сообщение во входящих дизайнера
type ContactMessageResponse struct {
	MessageID   string    `json:"message_id"`
	DesignerID  string    `json:"designer_id"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Subject     string    `json:"subject"`
	MessageBody string    `json:"message_body"`
	SentAt      time.Time `json:"sent_at"`
}
