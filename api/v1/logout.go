package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vodex-console/utils"
)

// Logout handles user logout. Tokens are stateless, so the server only
// clears the cookie; the client discards its stored token.
func Logout(c *gin.Context) {
	// Clear the cookie by setting max-age to -1 (expired)
	c.SetCookie(
		"access_token",
		"",
		-1,
		"/",
		"",
		true,
		true,
	)

	utils.Respond(c, http.StatusOK, "Logged out successfully", nil)
}
