package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vodex-console/dto"
	"github.com/vodex-console/models"
	"github.com/vodex-console/services"
	"github.com/vodex-console/utils"
)

// ListProjects handles GET /api/projects
func ListProjects(c *gin.Context) {
	page, limit := pageParams(c)
	filter := dto.ProjectFilter{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		ClientID: c.Query("clientId"),
		Status:   c.Query("status"),
	}

	result, err := projectService.List(filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.RespondError(c, http.StatusBadRequest, "invalid project status")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch projects")
		return
	}

	utils.Respond(c, http.StatusOK, "projects retrieved successfully", result)
}

// GetProject handles GET /api/projects/:id
func GetProject(c *gin.Context) {
	project, err := projectService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "project not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to fetch project")
		return
	}

	utils.Respond(c, http.StatusOK, "project retrieved successfully", dto.ProjectResponse{Project: project})
}

// CreateProject handles POST /api/projects (multipart form)
func CreateProject(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	status := strings.TrimSpace(c.PostForm("status"))
	clientID := strings.TrimSpace(c.PostForm("clientId"))
	if name == "" || status == "" || clientID == "" {
		utils.RespondError(c, http.StatusBadRequest, "name, status and clientId are required")
		return
	}

	customFields, _, err := parseCustomFields(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customFields must be valid JSON")
		return
	}

	input := dto.ProjectInput{
		Name:         name,
		Status:       models.ProjectStatus(status),
		ClientID:     clientID,
		CustomFields: customFields,
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		input.Images = form.File["images"]
	}

	project, err := projectService.Create(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, "invalid project status")
		case errors.Is(err, services.ErrClientNotFound):
			utils.RespondError(c, http.StatusBadRequest, "client not found")
		default:
			utils.RespondError(c, http.StatusInternalServerError, "failed to create project")
		}
		return
	}

	utils.Respond(c, http.StatusCreated, "project created successfully", dto.ProjectResponse{Project: project})
}

// UpdateProject handles PATCH /api/projects/:id (multipart form, partial)
func UpdateProject(c *gin.Context) {
	update := dto.ProjectUpdate{}

	if name, ok := c.GetPostForm("name"); ok {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "project name cannot be empty")
			return
		}
		update.Name = &trimmed
	}
	if status, ok := c.GetPostForm("status"); ok {
		parsed := models.ProjectStatus(strings.TrimSpace(status))
		update.Status = &parsed
	}
	if clientID, ok := c.GetPostForm("clientId"); ok {
		trimmed := strings.TrimSpace(clientID)
		if trimmed == "" {
			utils.RespondError(c, http.StatusBadRequest, "clientId cannot be empty")
			return
		}
		update.ClientID = &trimmed
	}

	customFields, present, err := parseCustomFields(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customFields must be valid JSON")
		return
	}
	if present {
		update.CustomFields = customFields
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		update.Images = form.File["images"]
	}

	project, err := projectService.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, "invalid project status")
		case errors.Is(err, services.ErrClientNotFound):
			utils.RespondError(c, http.StatusBadRequest, "client not found")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondError(c, http.StatusNotFound, "project not found")
		default:
			utils.RespondError(c, http.StatusInternalServerError, "failed to update project")
		}
		return
	}

	utils.Respond(c, http.StatusOK, "project updated successfully", dto.ProjectResponse{Project: project})
}

// DeleteProject handles DELETE /api/projects/:id
func DeleteProject(c *gin.Context) {
	if err := projectService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "project not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "failed to delete project")
		return
	}

	utils.Respond(c, http.StatusOK, "project deleted successfully", nil)
}
