package v1

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vodex-console/models"
)

// pageParams reads the page/limit query parameters with sane defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// parseCustomFields decodes the JSON-encoded customFields part of a
// multipart form. The second result reports whether the part was present.
func parseCustomFields(c *gin.Context) (models.JSONMap, bool, error) {
	raw, ok := c.GetPostForm("customFields")
	if !ok {
		return nil, false, nil
	}
	fields := models.JSONMap{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, true, err
		}
	}
	return fields, true, nil
}

// currentUserID reads the authenticated user's ID set by AuthMiddleware.
func currentUserID(c *gin.Context) string {
	if id, exists := c.Get("userId"); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
