package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/services"
	"github.com/vodex-console/utils"
)

// ListClients handles GET /api/clients
func ListClients(c *gin.Context) {
	page, limit := pageParams(c)
	filter := dto.ClientFilter{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		CompanyID: c.Query("companyId"),
	}

	result, err := clientService.List(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch clients")
		return
	}

	utils.Respond(c, http.StatusOK, "clients retrieved successfully", result)
}

// GetClient handles GET /api/clients/:id
func GetClient(c *gin.Context) {
	client, err := clientService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "client not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch client")
		return
	}

	utils.Respond(c, http.StatusOK, "client retrieved successfully", dto.ClientResponse{Client: client})
}

// CreateClient handles POST /api/clients (multipart form)
func CreateClient(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	companyID := strings.TrimSpace(c.PostForm("companyId"))
	if name == "" || email == "" || phone == "" || companyID == "" {
		utils.RespondError(c, http.StatusBadRequest, "name, email, phone and companyId are required")
		return
	}

	customFields, _, err := parseCustomFields(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customFields must be valid JSON")
		return
	}

	input := dto.ClientInput{
		Name:         name,
		Email:        email,
		Phone:        phone,
		CompanyID:    companyID,
		CustomFields: customFields,
	}
	if avatar, err := c.FormFile("avatar"); err == nil {
		input.Avatar = avatar
	}

	client, err := clientService.Create(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			utils.RespondError(c, http.StatusBadRequest, "company not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to create client")
		return
	}

	utils.Respond(c, http.StatusCreated, "client created successfully", dto.ClientResponse{Client: client})
}

// UpdateClient handles PATCH /api/clients/:id (multipart form, partial)
func UpdateClient(c *gin.Context) {
	update := dto.ClientUpdate{}

	if name, ok := c.GetPostForm("name"); ok {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "client name cannot be empty")
			return
		}
		update.Name = &trimmed
	}
	if email, ok := c.GetPostForm("email"); ok {
		trimmed := strings.TrimSpace(email)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "client email cannot be empty")
			return
		}
		update.Email = &trimmed
	}
	if phone, ok := c.GetPostForm("phone"); ok {
		trimmed := strings.TrimSpace(phone)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "client phone cannot be empty")
			return
		}
		update.Phone = &trimmed
	}
	if companyID, ok := c.GetPostForm("companyId"); ok {
		trimmed := strings.TrimSpace(companyID)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "companyId cannot be empty")
			return
		}
		update.CompanyID = &trimmed
	}

	customFields, present, err := parseCustomFields(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customFields must be valid JSON")
		return
	}
	if present {
		update.CustomFields = customFields
	}

	if avatar, err := c.FormFile("avatar"); err == nil {
		update.Avatar = avatar
	}

	client, err := clientService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCompanyNotFound):
			utils.RespondError(c, http.StatusBadRequest, "company not found")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, "client not found")
		default:
			utils.RespondError(c, http.StatusInternalServerError, "failed to update client")
		}
		return
	}

	utils.Respond(c, http.StatusOK, "client updated successfully", dto.ClientResponse{Client: client})
}

// DeleteClient handles DELETE /api/clients/:id
func DeleteClient(c *gin.Context) {
	if err := clientService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "client not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to delete client")
		return
	}

	utils.Respond(c, http.StatusOK, "client deleted successfully", nil)
}
