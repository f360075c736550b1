package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/token"
)

type AuthHandler struct {
	users  UserStore
	secret string
}

func NewAuthHandler(users UserStore, secret string) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

// IssueToken signs a 1-day token for an email that already has a user row.
// Unknown emails get the literal "unauthorized" with 403, which is the
// contract the clients check against.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(403, gin.H{"accessToken": "unauthorized"})
		return
	}
	accessToken, err := token.Sign(h.secret, email)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"accessToken": accessToken})
}
