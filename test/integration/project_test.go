package integration

import (
	"net/http"
	"testing"
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectBody - проект в JSON-ответах
type projectBody struct {
	ProjectID   string `json:"project_id"`
	DesignerID  string `json:"designer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Media       []struct {
		MediaID      string `json:"media_id"`
		MediaType    string `json:"media_type"`
		MediaURL     string `json:"media_url"`
		DisplayOrder int    `json:"display_order"`
	} `json:"media"`
}

func createProject(t *testing.T, ts *helpers.TestServer, token string, payload map[string]any) string {
	t.Helper()

	resp := ts.SendRequest(t, http.MethodPost, "/api/projects", token, payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success   bool   `json:"success"`
		ProjectID string `json:"project_id"`
	}
	helpers.DecodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.NotEmpty(t, body.ProjectID)
	return body.ProjectID
}

func TestProjectLifecycle(t *testing.T) {
	ts := helpers.NewTestServer(t)
	designerID, token := ts.RegisterAndLogin(t, "designer@example.com", models.UserRoleDesigner)

	projectID := createProject(t, ts, token, map[string]any{
		"title":       "Brand Identity",
		"description": "Logo and guidelines",
		"category":    "branding",
		"media": []map[string]any{
			{"type": "image", "url": "a.png"},
			{"type": "video", "url": "reel.mp4"},
		},
	})

	// Получение по id: медиа в порядке display_order
	resp := ts.SendRequest(t, http.MethodGet, "/api/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var getBody struct {
		Project projectBody `json:"project"`
	}
	helpers.DecodeResponse(t, resp, &getBody)
	assert.Equal(t, designerID, getBody.Project.DesignerID)
	assert.Equal(t, "Brand Identity", getBody.Project.Title)
	require.Len(t, getBody.Project.Media, 2)
	assert.Equal(t, 1, getBody.Project.Media[0].DisplayOrder)
	assert.Equal(t, "a.png", getBody.Project.Media[0].MediaURL)
	assert.Equal(t, 2, getBody.Project.Media[1].DisplayOrder)
	assert.Equal(t, "video", getBody.Project.Media[1].MediaType)

	// Обновление метаданных не трогает медиа
	resp = ts.SendRequest(t, http.MethodPut, "/api/projects/"+projectID, token, map[string]any{
		"title":    "Brand Identity v2",
		"category": "branding",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ts.SendRequest(t, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listBody struct {
		Projects []projectBody `json:"projects"`
	}
	helpers.DecodeResponse(t, resp, &listBody)
	require.Len(t, listBody.Projects, 1)
	assert.Equal(t, "Brand Identity v2", listBody.Projects[0].Title)
	assert.Len(t, listBody.Projects[0].Media, 2)

	// Добавление медиа продолжает нумерацию
	resp = ts.SendRequest(t, http.MethodPost, "/api/projects/"+projectID+"/media", token, map[string]any{
		"media": []map[string]any{{"type": "image", "url": "extra.png"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ts.SendRequest(t, http.MethodGet, "/api/projects/"+projectID, token, nil)
	helpers.DecodeResponse(t, resp, &getBody)
	require.Len(t, getBody.Project.Media, 3)
	assert.Equal(t, 3, getBody.Project.Media[2].DisplayOrder)

	// Удаление забирает с собой медиа
	resp = ts.SendRequest(t, http.MethodDelete, "/api/projects/"+projectID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var mediaCount int64
	ts.DB.Model(&models.ProjectMedia{}).Where("project_id = ?", projectID).Count(&mediaCount)
	assert.Zero(t, mediaCount)

	resp = ts.SendRequest(t, http.MethodGet, "/api/projects/"+projectID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProjects_FilterAndSort(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.RegisterAndLogin(t, "designer@example.com", models.UserRoleDesigner)

	createProject(t, ts, token, map[string]any{"title": "Zeta", "category": "web"})
	createProject(t, ts, token, map[string]any{"title": "Alpha", "category": "web"})
	createProject(t, ts, token, map[string]any{"title": "Poster", "category": "print"})

	resp := ts.SendRequest(t, http.MethodGet, "/api/projects?category=web&sort=title", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listBody struct {
		Projects []projectBody `json:"projects"`
	}
	helpers.DecodeResponse(t, resp, &listBody)
	require.Len(t, listBody.Projects, 2)
	assert.Equal(t, "Alpha", listBody.Projects[0].Title)
	assert.Equal(t, "Zeta", listBody.Projects[1].Title)

	resp = ts.SendRequest(t, http.MethodGet, "/api/projects?sort=nonsense", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProjects_OwnershipIsolation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, ownerToken := ts.RegisterAndLogin(t, "owner@example.com", models.UserRoleDesigner)
	_, otherToken := ts.RegisterAndLogin(t, "other@example.com", models.UserRoleDesigner)

	projectID := createProject(t, ts, ownerToken, map[string]any{"title": "Private"})

	// Список другого дизайнера пуст
	resp := ts.SendRequest(t, http.MethodGet, "/api/projects", otherToken, nil)
	var listBody struct {
		Projects []projectBody `json:"projects"`
	}
	helpers.DecodeResponse(t, resp, &listBody)
	assert.Empty(t, listBody.Projects)

	// Чужие запись и удаление запрещены
	resp = ts.SendRequest(t, http.MethodPut, "/api/projects/"+projectID, otherToken, map[string]any{"title": "Hijacked"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	var errResp errorBody
	helpers.DecodeResponse(t, resp, &errResp)
	assert.Equal(t, "FORBIDDEN", errResp.Code)

	resp = ts.SendRequest(t, http.MethodDelete, "/api/projects/"+projectID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Проект не изменился
	var project models.Project
	require.NoError(t, ts.DB.First(&project, "id = ?", projectID).Error)
	assert.Equal(t, "Private", project.Title)
}

func TestProjects_AuthRequired(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// Без заголовка Authorization
	resp := ts.SendRequest(t, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var errResp errorBody
	helpers.DecodeResponse(t, resp, &errResp)
	assert.Equal(t, "UNAUTHORIZED", errResp.Code)

	// Предъявленный, но невалидный токен
	resp = ts.SendRequest(t, http.MethodGet, "/api/projects", "not-a-jwt", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	helpers.DecodeResponse(t, resp, &errResp)
	assert.Equal(t, "INVALID_TOKEN", errResp.Code)

	// Истекший токен с корректной подписью: тоже 403, но отличимый код
	now := time.Now()
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: "user-123",
		Role:   models.UserRoleDesigner,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	}).SignedString([]byte(helpers.TestJWTSecret))
	require.NoError(t, err)

	resp = ts.SendRequest(t, http.MethodGet, "/api/projects", expired, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	helpers.DecodeResponse(t, resp, &errResp)
	assert.Equal(t, "TOKEN_EXPIRED", errResp.Code)
}

func TestUpdateProject_NotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.RegisterAndLogin(t, "designer@example.com", models.UserRoleDesigner)

	resp := ts.SendRequest(t, http.MethodPut, "/api/projects/"+uuid.NewString(), token, map[string]any{"title": "Nothing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateProject_RejectsBadMediaType(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.RegisterAndLogin(t, "designer@example.com", models.UserRoleDesigner)

	resp := ts.SendRequest(t, http.MethodPost, "/api/projects", token, map[string]any{
		"title": "Broken",
		"media": []map[string]any{{"type": "gif", "url": "a.gif"}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	var count int64
	ts.DB.Model(&models.Project{}).Count(&count)
	assert.Zero(t, count)
}
