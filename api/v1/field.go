package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
	"github.com/vodex-console/services"
	"github.com/vodex-console/utils"
)

// All field routes share the :key parameter. For list, create and reorder it
// names an entity type; for update, delete and toggle it names a field ID.

// ListFields handles GET /api/fields/:key
func ListFields(c *gin.Context) {
	fields, err := fieldService.List(models.EntityType(c.Param("key")))
	if err != nil {
		if errors.Is(err, services.ErrInvalidEntityType) {
			utils.RespondError(c, http.StatusBadRequest, "invalid entity type")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch fields")
		return
	}

	utils.Respond(c, http.StatusOK, "fields retrieved successfully", dto.FieldListResponse{Fields: fields})
}

// CreateField handles POST /api/fields/:key
func CreateField(c *gin.Context) {
	var req dto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "fieldKey, fieldLabel and fieldType are required")
		return
	}

	field, err := fieldService.Create(models.EntityType(c.Param("key")), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEntityType):
			utils.RespondError(c, http.StatusBadRequest, "invalid entity type")
		case errors.Is(err, services.ErrInvalidFieldType):
			utils.RespondError(c, http.StatusBadRequest, "invalid field type")
		case errors.Is(err, services.ErrBlankFieldKey):
			utils.RespondError(c, http.StatusBadRequest, "fieldKey and fieldLabel cannot be blank")
		case errors.Is(err, services.ErrDuplicateFieldKey):
			utils.RespondError(c, http.StatusBadRequest, "fieldKey already exists for this entity type")
		default:
			utils.RespondError(c, http.StatusInternalServerError, "failed to create field")
		}
		return
	}

	utils.Respond(c, http.StatusCreated, "field created successfully", dto.FieldResponse{Field: field})
}

// UpdateField handles PUT /api/fields/:key
func UpdateField(c *gin.Context) {
	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	field, err := fieldService.Update(c.Param("key"), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFieldType):
			utils.RespondError(c, http.StatusBadRequest, "invalid field type")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, "field not found")
		default:
			utils.RespondError(c, http.StatusInternalServerError, "failed to update field")
		}
		return
	}

	utils.Respond(c, http.StatusOK, "field updated successfully", dto.FieldResponse{Field: field})
}

// ToggleField handles PATCH /api/fields/:key/toggle
func ToggleField(c *gin.Context) {
	field, err := fieldService.Toggle(c.Param("key"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "field not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to toggle field")
		return
	}

	utils.Respond(c, http.StatusOK, "field toggled successfully", dto.FieldResponse{Field: field})
}

// DeleteField handles DELETE /api/fields/:key
func DeleteField(c *gin.Context) {
	if err := fieldService.Delete(c.Param("key")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "field not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to delete field")
		return
	}

	utils.Respond(c, http.StatusOK, "field deleted successfully", nil)
}

// ReorderFields handles PATCH /api/fields/:key/reorder
func ReorderFields(c *gin.Context) {
	var req dto.ReorderFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "fieldOrders is required")
		return
	}

	if err := fieldService.Reorder(models.EntityType(c.Param("key")), req); err != nil {
		if errors.Is(err, services.ErrInvalidEntityType) {
			utils.RespondError(c, http.StatusBadRequest, "invalid entity type")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to reorder fields")
		return
	}

	utils.Respond(c, http.StatusOK, "fields reordered successfully", nil)
}
