package dto

import (
	"time"

	"portfolio_backend/internal/models"
)

// MediaInput - медиа-дескриптор в порядке подачи.
// display_order назначает сервер: 1-based позиция в списке.
type MediaInput struct {
	Type models.MediaType `json:"type" binding:"required" validate:"required,is-media-type"`
	URL  string           `json:"url" binding:"required"`
}

// CreateProjectRequest - запрос создания проекта
type CreateProjectRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Media       []MediaInput `json:"media" binding:"omitempty,dive" validate:"omitempty,dive"`
}

// UpdateProjectRequest - запрос обновления проекта (медиа не трогает)
type UpdateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// AddMediaRequest - запрос добавления медиа к существующему проекту
type AddMediaRequest struct {
	Media []MediaInput `json:"media" binding:"required,min=1,dive" validate:"required,min=1,dive"`
}

// ProjectListQuery - фильтр и сортировка списка проектов
type ProjectListQuery struct {
	Category string `form:"category"`
	Sort     string `form:"sort" binding:"omitempty,oneof=created_at title"`
}

// MediaResponse - медиа-элемент в ответе
type MediaResponse struct {
	MediaID      string           `json:"media_id"`
	MediaType    models.MediaType `json:"media_type"`
	MediaURL     string           `json:"media_url"`
	DisplayOrder int              `json:"display_order"`
}

// ProjectResponse - проект в ответе
type ProjectResponse struct {
	ProjectID   string          `json:"project_id"`
	DesignerID  string          `json:"designer_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Media       []MediaResponse `json:"media"`
}

// NewProjectResponse маппит модель в ответ API
func NewProjectResponse(p *models.Project) ProjectResponse {
	media := make([]MediaResponse, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, MediaResponse{
			MediaID:      m.ID,
			MediaType:    m.MediaType,
			MediaURL:     m.MediaURL,
			DisplayOrder: m.DisplayOrder,
		})
	}
	return ProjectResponse{
		ProjectID:   p.ID,
		DesignerID:  p.DesignerID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Media:       media,
	}
}
