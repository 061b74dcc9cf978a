package middleware

import "github.com/gin-gonic/gin"

// userIDKey and userEmailKey hold the authenticated caller's identity,
// written by AuthMiddleware from the verified token claims.
const (
	userIDKey    = contextKey("userID")
	userEmailKey = contextKey("userEmail")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserEmailFromContext retrieves the authenticated user's email from the
// request context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, ok := c.Request.Context().Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
