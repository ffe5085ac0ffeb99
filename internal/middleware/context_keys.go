package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// authMethodKey records which mechanism authenticated the request ("jwt" or "service_token").
const authMethodKey = contextKey("authMethod")

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetAuthMethod returns how the current request was authenticated, if at all.
func GetAuthMethod(c *gin.Context) (string, bool) {
	method, ok := c.Request.Context().Value(authMethodKey).(string)
	return method, ok
}
