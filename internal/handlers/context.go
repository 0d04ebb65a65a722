package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDFromContext reads the user id set by the Authenticate middleware.
func userIDFromContext(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, errors.New("no authenticated user in context")
	}

	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		return uuid.Parse(v)
	default:
		return uuid.Nil, errors.New("invalid user ID format")
	}
}
