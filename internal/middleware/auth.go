package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnamulHassan/buy-and-sell-server-repo/internal/token"
)

// DecodedEmailKey is where the gate stores the verified token's email claim.
const DecodedEmailKey = "decodedEmail"

// VerifyJWT rejects requests without a bearer token (401) or with an
// invalid/expired one (403), and otherwise puts the decoded email on the
// request context for handlers.
func VerifyJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"acknowledged": false, "message": "unauthorized access"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(403, gin.H{"acknowledged": false, "message": "forbidden access"})
			return
		}
		claims, err := token.Parse(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"acknowledged": false, "message": "forbidden access"})
			return
		}
		c.Set(DecodedEmailKey, claims.UserEmail)
		c.Next()
	}
}
