package dto

import (
	"portfolio_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`
}

// RegisterResponse - ответ на успешную регистрацию
type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse - ответ с токеном и ролью
type LoginResponse struct {
	Success  bool            `json:"success"`
	Token    string          `json:"token"`
	UserRole models.UserRole `json:"user_role"`
	Message  string          `json:"message"`
}
