package services

import (
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectService interface {
	List(db *gorm.DB, designerID string, query *dto.ProjectListQuery) ([]dto.ProjectResponse, error)
	Get(db *gorm.DB, designerID, projectID string) (*dto.ProjectResponse, error)
	Create(db *gorm.DB, designerID string, req *dto.CreateProjectRequest) (string, error)
	Update(db *gorm.DB, designerID, projectID string, req *dto.UpdateProjectRequest) error
	Delete(db *gorm.DB, designerID, projectID string) error
	AddMedia(db *gorm.DB, designerID, projectID string, req *dto.AddMediaRequest) error
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) List(db *gorm.DB, designerID string, query *dto.ProjectListQuery) ([]dto.ProjectResponse, error) {
	filter := repositories.ProjectFilter{}
	if query != nil {
		filter.Category = query.Category
		filter.Sort = query.Sort
	}

	projects, err := s.projectRepo.FindByDesigner(db, designerID, filter)
	if err != nil {
		return nil, apperrors.StoreFailure(err, "Error fetching projects")
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, dto.NewProjectResponse(&projects[i]))
	}
	return responses, nil
}

func (s *ProjectServiceImpl) Get(db *gorm.DB, designerID, projectID string) (*dto.ProjectResponse, error) {
	project, err := s.findOwned(db, designerID, projectID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

// Create создает проект вместе с медиа одной транзакцией.
// display_order = 1-based позиция дескриптора в поданном списке.
// Любой сбой на вставке медиа откатывает всё: частичных строк не остается.
func (s *ProjectServiceImpl) Create(db *gorm.DB, designerID string, req *dto.CreateProjectRequest) (string, error) {
	project := &models.Project{
		DesignerID:  designerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.Create(tx, project); err != nil {
			return apperrors.StoreFailure(err, "Error creating project")
		}

		for i, m := range req.Media {
			media := &models.ProjectMedia{
				ProjectID:    project.ID,
				MediaType:    m.Type,
				MediaURL:     m.URL,
				DisplayOrder: i + 1,
			}
			if err := s.projectRepo.CreateMedia(tx, media); err != nil {
				return apperrors.StoreFailure(err, "Error creating project")
			}
		}

		return nil
	})
	if txErr != nil {
		return "", txErr
	}

	return project.ID, nil
}

func (s *ProjectServiceImpl) Update(db *gorm.DB, designerID, projectID string, req *dto.UpdateProjectRequest) error {
	project, err := s.findOwned(db, designerID, projectID)
	if err != nil {
		return err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Category = req.Category

	if err := s.projectRepo.Update(db, project); err != nil {
		return apperrors.StoreFailure(err, "Error updating project")
	}
	return nil
}

// Delete удаляет медиа и проект одним атомарным блоком:
// частичное удаление недопустимо
func (s *ProjectServiceImpl) Delete(db *gorm.DB, designerID, projectID string) error {
	if _, err := s.findOwned(db, designerID, projectID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.DeleteMediaByProject(tx, projectID); err != nil {
			return apperrors.StoreFailure(err, "Error deleting project")
		}
		if err := s.projectRepo.Delete(tx, projectID); err != nil {
			return apperrors.StoreFailure(err, "Error deleting project")
		}
		return nil
	})
}

// AddMedia дописывает медиа к существующему проекту.
// Порядок остается плотным: продолжаем с текущего максимума.
func (s *ProjectServiceImpl) AddMedia(db *gorm.DB, designerID, projectID string, req *dto.AddMediaRequest) error {
	if _, err := s.findOwned(db, designerID, projectID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		maxOrder, err := s.projectRepo.MaxDisplayOrder(tx, projectID)
		if err != nil {
			return apperrors.StoreFailure(err, "Error adding project media")
		}

		for i, m := range req.Media {
			media := &models.ProjectMedia{
				ProjectID:    projectID,
				MediaType:    m.Type,
				MediaURL:     m.URL,
				DisplayOrder: maxOrder + i + 1,
			}
			if err := s.projectRepo.CreateMedia(tx, media); err != nil {
				return apperrors.StoreFailure(err, "Error adding project media")
			}
		}

		return nil
	})
}

// findOwned - проверка существования и владения.
// Чужой проект -> 403, несуществующий -> 404.
func (s *ProjectServiceImpl) findOwned(db *gorm.DB, designerID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.StoreFailure(err, "Error fetching project")
	}
	if project.DesignerID != designerID {
		return nil, apperrors.ErrNotProjectOwner
	}
	return project, nil
}
