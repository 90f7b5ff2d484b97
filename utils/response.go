package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the response shape shared by every API endpoint.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Respond writes the standard envelope with the given status and payload.
func Respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Success:    status < 400,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// RespondError writes an error envelope with no data payload.
func RespondError(c *gin.Context, status int, message string) {
	Respond(c, status, message, nil)
}
