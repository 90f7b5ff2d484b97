package repositories

import (
	"gorm.io/gorm"

	"github.com/vodex-console/database"
	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindWithPagination retrieves one page of projects, newest first
func (r *ProjectRepository) FindWithPagination(filter dto.ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if filter.ClientID != "" {
		db = db.Where("client_id = ?", filter.ClientID)
	}

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if filter.Search != "" {
		db = db.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Order("created_at desc").
		Limit(filter.Limit).Offset(offset).
		Preload("Client").Preload("Client.Company").
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// FindByID retrieves a project by its ID with its client and company
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Client").Preload("Client.Company").First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	if err := database.DB.Create(&project).Error; err != nil {
		return project, err
	}
	return r.FindByID(project.ID)
}

// Updates applies the given column changes and returns the fresh record
func (r *ProjectRepository) Updates(id string, changes map[string]any) (models.Project, error) {
	result := database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return models.Project{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete soft-deletes a project
func (r *ProjectRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
