package repositories

import (
	"gorm.io/gorm"

	"github.com/vodex-console/database"
	"github.com/vodex-console/models"
)

// FieldRepository handles database operations for field definitions
type FieldRepository struct{}

// NewFieldRepository creates a new field repository instance
func NewFieldRepository() *FieldRepository {
	return &FieldRepository{}
}

// FindByEntityType retrieves all field definitions for one entity type,
// ordered by display order, ties broken by insertion order.
func (r *FieldRepository) FindByEntityType(entityType models.EntityType) ([]models.FieldDefinition, error) {
	var fields []models.FieldDefinition
	result := database.DB.Where("entity_type = ?", entityType).
		Order("display_order asc, created_at asc").
		Find(&fields)
	return fields, result.Error
}

// FindByID retrieves a field definition by its ID
func (r *FieldRepository) FindByID(id string) (models.FieldDefinition, error) {
	var field models.FieldDefinition
	result := database.DB.First(&field, "id = ?", id)
	return field, result.Error
}

// KeyExists checks if a field key is already taken within an entity type
func (r *FieldRepository) KeyExists(entityType models.EntityType, fieldKey string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.FieldDefinition{}).
		Where("entity_type = ? AND field_key = ?", entityType, fieldKey).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new field definition into the database
func (r *FieldRepository) Create(field models.FieldDefinition) (models.FieldDefinition, error) {
	result := database.DB.Create(&field)
	return field, result.Error
}

// Save persists changes to an existing field definition
func (r *FieldRepository) Save(field models.FieldDefinition) (models.FieldDefinition, error) {
	result := database.DB.Save(&field)
	return field, result.Error
}

// Delete removes a field definition. Definitions are hard-deleted so the
// key can be recreated; values already stored on entities are left in place.
func (r *FieldRepository) Delete(id string) error {
	result := database.DB.Delete(&models.FieldDefinition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrders reassigns display orders for an entity type in one transaction
func (r *FieldRepository) UpdateOrders(entityType models.EntityType, orders map[string]int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			result := tx.Model(&models.FieldDefinition{}).
				Where("id = ? AND entity_type = ?", id, entityType).
				Update("display_order", order)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}
