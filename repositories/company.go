package repositories

import (
	"gorm.io/gorm"

	"github.com/vodex-console/database"
	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct{}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

// FindWithPagination retrieves one page of companies, newest first
func (r *CompanyRepository) FindWithPagination(filter dto.CompanyFilter) ([]models.Company, int64, error) {
	var companies []models.Company
	var totalCount int64

	db := database.DB.Model(&models.Company{})

	if filter.Search != "" {
		db = db.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Order("created_at desc").
		Limit(filter.Limit).Offset(offset).
		Preload("CreatedBy").
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, totalCount, nil
}

// FindByID retrieves a company by its ID
func (r *CompanyRepository) FindByID(id string) (models.Company, error) {
	var company models.Company
	result := database.DB.Preload("CreatedBy").First(&company, "id = ?", id)
	return company, result.Error
}

// Create inserts a new company into the database
func (r *CompanyRepository) Create(company models.Company) (models.Company, error) {
	result := database.DB.Create(&company)
	return company, result.Error
}

// Updates applies the given column changes and returns the fresh record
func (r *CompanyRepository) Updates(id string, changes map[string]any) (models.Company, error) {
	result := database.DB.Model(&models.Company{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return models.Company{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Company{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete soft-deletes a company and cascades to its clients and their
// projects in one transaction.
func (r *CompanyRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var clientIDs []string
		if err := tx.Model(&models.Client{}).Where("company_id = ?", id).
			Pluck("id", &clientIDs).Error; err != nil {
			return err
		}

		if len(clientIDs) > 0 {
			if err := tx.Where("client_id IN ?", clientIDs).Delete(&models.Project{}).Error; err != nil {
				return err
			}
			if err := tx.Where("company_id = ?", id).Delete(&models.Client{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Company{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a company exists
func (r *CompanyRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
