package helpers

import (
	"net/http"
	"testing"

	"portfolio_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// DefaultPassword - пароль тестовых аккаунтов
const DefaultPassword = "password123"

// RegisterUser регистрирует пользователя через API и возвращает user_id
func (ts *TestServer) RegisterUser(t *testing.T, email string, role models.UserRole) string {
	t.Helper()

	resp := ts.SendRequest(t, http.MethodPost, "/api/register", "", map[string]any{
		"email":    email,
		"password": DefaultPassword,
		"role":     role,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		UserID  string `json:"user_id"`
	}
	DecodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.NotEmpty(t, body.UserID)
	return body.UserID
}

// Login входит через API и возвращает JWT
func (ts *TestServer) Login(t *testing.T, email string) string {
	t.Helper()

	resp := ts.SendRequest(t, http.MethodPost, "/api/login", "", map[string]any{
		"email":    email,
		"password": DefaultPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	DecodeResponse(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// RegisterAndLogin - регистрация и вход одним вызовом
func (ts *TestServer) RegisterAndLogin(t *testing.T, email string, role models.UserRole) (userID, token string) {
	t.Helper()

	userID = ts.RegisterUser(t, email, role)
	token = ts.Login(t, email)
	return userID, token
}
