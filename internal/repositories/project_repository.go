package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter - параметры выборки списка проектов
type ProjectFilter struct {
	Category string
	Sort     string // "created_at" | "title", по возрастанию
}

type ProjectRepository interface {
	Create(db *gorm.DB, project *models.Project) error
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	FindByDesigner(db *gorm.DB, designerID string, filter ProjectFilter) ([]models.Project, error)
	Update(db *gorm.DB, project *models.Project) error
	Delete(db *gorm.DB, id string) error

	// Media operations
	CreateMedia(db *gorm.DB, media *models.ProjectMedia) error
	FindMediaByProject(db *gorm.DB, projectID string) ([]models.ProjectMedia, error)
	MaxDisplayOrder(db *gorm.DB, projectID string) (int, error)
	DeleteMediaByProject(db *gorm.DB, projectID string) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) Create(db *gorm.DB, project *models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByDesigner(db *gorm.DB, designerID string, filter ProjectFilter) ([]models.Project, error) {
	var projects []models.Project

	query := db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Where("designer_id = ?", designerID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	switch filter.Sort {
	case "title":
		query = query.Order("title ASC")
	case "created_at":
		query = query.Order("created_at ASC")
	}

	err := query.Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Update(db *gorm.DB, project *models.Project) error {
	return db.Model(project).
		Select("Title", "Description", "Category").
		Updates(project).Error
}

func (r *ProjectRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Project{}, "id = ?", id).Error
}

// Media operations

func (r *ProjectRepositoryImpl) CreateMedia(db *gorm.DB, media *models.ProjectMedia) error {
	return db.Create(media).Error
}

func (r *ProjectRepositoryImpl) FindMediaByProject(db *gorm.DB, projectID string) ([]models.ProjectMedia, error) {
	var media []models.ProjectMedia
	err := db.Where("project_id = ?", projectID).
		Order("display_order ASC").Find(&media).Error
	return media, err
}

func (r *ProjectRepositoryImpl) MaxDisplayOrder(db *gorm.DB, projectID string) (int, error) {
	var maxOrder int
	err := db.Model(&models.ProjectMedia{}).Where("project_id = ?", projectID).
		Select("COALESCE(MAX(display_order), 0)").Scan(&maxOrder).Error
	return maxOrder, err
}

func (r *ProjectRepositoryImpl) DeleteMediaByProject(db *gorm.DB, projectID string) error {
	return db.Delete(&models.ProjectMedia{}, "project_id = ?", projectID).Error
}
