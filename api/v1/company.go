package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/utils"
)

// ListCompanies handles GET /api/companies
func ListCompanies(c *gin.Context) {
	page, limit := pageParams(c)
	filter := dto.CompanyFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}

	result, err := companyService.List(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch companies")
		return
	}

	utils.Respond(c, http.StatusOK, "companies retrieved successfully", result)
}

// GetCompany handles GET /api/companies/:id
func GetCompany(c *gin.Context) {
	company, err := companyService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "company not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch company")
		return
	}

	utils.Respond(c, http.StatusOK, "company retrieved successfully", dto.CompanyResponse{Company: company})
}

// CreateCompany handles POST /api/companies (multipart form)
func CreateCompany(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "company name is required")
		return
	}

	customFields, _, err := parseCustomFields(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customFields must be valid JSON")
		return
	}

	input := dto.CompanyInput{
		Name:         name,
		CustomFields: customFields,
	}
	if logo, err := c.FormFile("logo"); err == nil {
		input.Logo = logo
	}

	company, err := companyService.Create(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "failed to create company")
		return
	}

	utils.Respond(c, http.StatusCreated, "company created successfully", dto.CompanyResponse{Company: company})
}

// UpdateCompany handles PATCH /api/companies/:id (multipart form, partial)
func UpdateCompany(c *gin.Context) {
	update := dto.CompanyUpdate{}

	if name, ok := c.GetPostForm("name"); ok {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "company name cannot be empty")
			return
		}
		update.Name = &trimmed
	}

	customFields, present, err := parseCustomFields(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customFields must be valid JSON")
		return
	}
	if present {
		update.CustomFields = customFields
	}

	if logo, err := c.FormFile("logo"); err == nil {
		update.Logo = logo
	}

	company, err := companyService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "company not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to update company")
		return
	}

	utils.Respond(c, http.StatusOK, "company updated successfully", dto.CompanyResponse{Company: company})
}

// DeleteCompany handles DELETE /api/companies/:id
func DeleteCompany(c *gin.Context) {
	if err := companyService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "company not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to delete company")
		return
	}

	utils.Respond(c, http.StatusOK, "company deleted successfully", nil)
}
