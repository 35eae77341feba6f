package services

import (
	"errors"
	"fmt"
	"testing"

	"portfolio_backend/database"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// flakyMediaRepo - репозиторий, у которого падает N-я вставка медиа
type flakyMediaRepo struct {
	repositories.ProjectRepository
	failAt int
	calls  int
}

func (r *flakyMediaRepo) CreateMedia(db *gorm.DB, media *models.ProjectMedia) error {
	r.calls++
	if r.calls == r.failAt {
		return errors.New("forced media insert failure")
	}
	return r.ProjectRepository.CreateMedia(db, media)
}

func TestCreateProject_AssignsDenseDisplayOrder(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewProjectService(repositories.NewProjectRepository())

	projectID, err := svc.Create(db, "designer-1", &dto.CreateProjectRequest{
		Title:    "Logo Set",
		Category: "branding",
		Media: []dto.MediaInput{
			{Type: models.MediaTypeImage, URL: "a.png"},
			{Type: models.MediaTypeImage, URL: "b.png"},
			{Type: models.MediaTypeVideo, URL: "c.mp4"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, projectID)

	var media []models.ProjectMedia
	require.NoError(t, db.Where("project_id = ?", projectID).Order("display_order ASC").Find(&media).Error)
	require.Len(t, media, 3)
	for i, m := range media {
		assert.Equal(t, i+1, m.DisplayOrder)
	}
	assert.Equal(t, "a.png", media[0].MediaURL)
	assert.Equal(t, "c.mp4", media[2].MediaURL)
}

func TestCreateProject_RollsBackOnMediaFailure(t *testing.T) {
	db := newServiceTestDB(t)
	repo := &flakyMediaRepo{ProjectRepository: repositories.NewProjectRepository(), failAt: 2}
	svc := NewProjectService(repo)

	_, err := svc.Create(db, "designer-1", &dto.CreateProjectRequest{
		Title: "Doomed",
		Media: []dto.MediaInput{
			{Type: models.MediaTypeImage, URL: "1.png"},
			{Type: models.MediaTypeImage, URL: "2.png"},
			{Type: models.MediaTypeImage, URL: "3.png"},
			{Type: models.MediaTypeImage, URL: "4.png"},
		},
	})
	require.Error(t, err)

	// После отката не должно остаться ни проекта, ни медиа
	var projectCount, mediaCount int64
	db.Model(&models.Project{}).Count(&projectCount)
	db.Model(&models.ProjectMedia{}).Count(&mediaCount)
	assert.Zero(t, projectCount)
	assert.Zero(t, mediaCount)
}

func TestDeleteProject_CascadesMedia(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewProjectService(repositories.NewProjectRepository())

	projectID, err := svc.Create(db, "designer-1", &dto.CreateProjectRequest{
		Title: "Short-lived",
		Media: []dto.MediaInput{
			{Type: models.MediaTypeImage, URL: "a.png"},
			{Type: models.MediaTypeImage, URL: "b.png"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(db, "designer-1", projectID))

	var projectCount, mediaCount int64
	db.Model(&models.Project{}).Where("id = ?", projectID).Count(&projectCount)
	db.Model(&models.ProjectMedia{}).Where("project_id = ?", projectID).Count(&mediaCount)
	assert.Zero(t, projectCount)
	assert.Zero(t, mediaCount)
}

func TestProjectOwnership(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewProjectService(repositories.NewProjectRepository())

	projectID, err := svc.Create(db, "designer-1", &dto.CreateProjectRequest{Title: "Mine"})
	require.NoError(t, err)

	// Чужая identity не может ни обновить, ни удалить
	err = svc.Update(db, "designer-2", projectID, &dto.UpdateProjectRequest{Title: "Stolen"})
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	err = svc.Delete(db, "designer-2", projectID)
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	// Проект не тронут
	var project models.Project
	require.NoError(t, db.First(&project, "id = ?", projectID).Error)
	assert.Equal(t, "Mine", project.Title)
}

func TestAddMedia_ContinuesOrder(t *testing.T) {
	db := newServiceTestDB(t)
	svc := NewProjectService(repositories.NewProjectRepository())

	projectID, err := svc.Create(db, "designer-1", &dto.CreateProjectRequest{
		Title: "Growing",
		Media: []dto.MediaInput{
			{Type: models.MediaTypeImage, URL: "a.png"},
			{Type: models.MediaTypeImage, URL: "b.png"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddMedia(db, "designer-1", projectID, &dto.AddMediaRequest{
		Media: []dto.MediaInput{
			{Type: models.MediaTypeVideo, URL: "c.mp4"},
		},
	}))

	var media []models.ProjectMedia
	require.NoError(t, db.Where("project_id = ?", projectID).Order("display_order ASC").Find(&media).Error)
	require.Len(t, media, 3)
	assert.Equal(t, 3, media[2].DisplayOrder)
	assert.Equal(t, "c.mp4", media[2].MediaURL)
}
