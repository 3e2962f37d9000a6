package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ridwanfathin/invoice-builder-service/internal/middleware"
)

// getPathParam retrieves a path parameter and validates it's not empty
func getPathParam(c *gin.Context, paramName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", fmt.Errorf("%s is required", paramName)
	}
	return value, nil
}

// getPathIndex retrieves a non-negative integer path parameter
func getPathIndex(c *gin.Context, paramName string) (int, error) {
	value, err := strconv.Atoi(c.Param(paramName))
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s: must be a non-negative integer", paramName)
	}
	return value, nil
}

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// currentUserID returns the owner id set by the auth middleware
func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// logError logs a failed handler step with the request's correlation id
func logError(c *gin.Context, event string, err error, extra map[string]interface{}) {
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("request_id", c.GetString("request_id")),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	}
	for k, v := range extra {
		fields = append(fields, zap.Any(k, v))
	}
	zap.L().Error("handler error", fields...)
}
