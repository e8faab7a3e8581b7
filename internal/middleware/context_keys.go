package middleware

import "github.com/gin-gonic/gin"

// ownerIDKey is the key used to store the authenticated owner's ID in the
// request context. Using a custom type prevents collisions.
const ownerIDKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the authenticated owner ID from the Gin
// context. It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	ownerIDVal := c.Request.Context().Value(ownerIDKey)
	if ownerIDVal == nil {
		return "", false
	}
	ownerID, ok := ownerIDVal.(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
