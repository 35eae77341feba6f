package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio_backend/database"
	"portfolio_backend/internal/app"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestJWTSecret - секрет подписи токенов в интеграционных тестах
const TestJWTSecret = "integration-test-secret"

// TestServer - поднятый HTTP-сервер поверх изолированной in-memory БД
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer собирает полный роутер приложения поверх sqlite в памяти.
// Каждый тест получает собственную БД, именованную по имени теста.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("test")
	auth.Init(TestJWTSecret, 24*time.Hour)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	// TranslateError - как в продакшен-конфигурации: дубликаты уникальных
	// индексов приходят как gorm.ErrDuplicatedKey
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	router := app.SetupRouter(db)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return &TestServer{Server: server, DB: db}
}

// SendRequest выполняет JSON-запрос к тестовому серверу.
// Пустой token - запрос без заголовка Authorization.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// DecodeResponse читает и закрывает тело ответа
func DecodeResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
