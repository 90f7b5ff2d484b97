package repositories

import (
	"gorm.io/gorm"

	"github.com/vodex-console/database"
	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// ClientRepository handles database operations for clients
type ClientRepository struct{}

// NewClientRepository creates a new client repository instance
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// FindWithPagination retrieves one page of clients, newest first
func (r *ClientRepository) FindWithPagination(filter dto.ClientFilter) ([]models.Client, int64, error) {
	var clients []models.Client
	var totalCount int64

	db := database.DB.Model(&models.Client{})

	if filter.CompanyID != "" {
		db = db.Where("company_id = ?", filter.CompanyID)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("(name ILIKE ? OR email ILIKE ? OR phone ILIKE ?)", pattern, pattern, pattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Order("created_at desc").
		Limit(filter.Limit).Offset(offset).
		Preload("Company").
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, totalCount, nil
}

// FindByID retrieves a client by its ID with its company
func (r *ClientRepository) FindByID(id string) (models.Client, error) {
	var client models.Client
	result := database.DB.Preload("Company").First(&client, "id = ?", id)
	return client, result.Error
}

// Create inserts a new client into the database
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	if err := database.DB.Create(&client).Error; err != nil {
		return client, err
	}
	return r.FindByID(client.ID)
}

// Updates applies the given column changes and returns the fresh record
func (r *ClientRepository) Updates(id string, changes map[string]any) (models.Client, error) {
	result := database.DB.Model(&models.Client{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return models.Client{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Client{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete soft-deletes a client and cascades to its projects.
func (r *ClientRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Client{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a client exists
func (r *ClientRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
