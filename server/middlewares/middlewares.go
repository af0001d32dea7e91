package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Luismorlan/tribe/model"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// APIKeyHeader carries the caller's credential. Header lookup is case
	// insensitive.
	APIKeyHeader = "api-key"

	currentUserKey = "current_user"

	ErrorTypeValidation = "VALIDATION_ERROR"
	ErrorTypeDatabase   = "DATABASE_ERROR"
	ErrorTypeInternal   = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// UserFinder resolves an api key to its user. It returns nil, nil when no
// user holds the key.
type UserFinder interface {
	FindUserByAPIKey(ctx context.Context, apiKey string) (*model.UserProfile, error)
}

// HTTPErrorType is the error_type of a plain HTTP failure, e.g. "HTTP_404".
func HTTPErrorType(status int) string {
	return fmt.Sprintf("HTTP_%d", status)
}

// AbortWithError writes the error envelope with an "HTTP_<status>" type and
// stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string) {
	AbortWithErrorType(c, status, HTTPErrorType(status), message)
}

func AbortWithErrorType(c *gin.Context, status int, errorType string, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Result:       false,
		ErrorType:    errorType,
		ErrorMessage: message,
	})
}

// APIKeyAuth middleware reads the "api-key" header and loads the matching user
// into the context, see CurrentUser. Unknown or missing keys are rejected with
// 401 before any handler runs.
func APIKeyAuth(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)

		user, err := users.FindUserByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			Logger.Log.WithError(err).Error("fail to look up api key")
			AbortWithErrorType(c, http.StatusInternalServerError, ErrorTypeDatabase, "Database error occurred")
			return
		}
		if user == nil {
			AbortWithError(c, http.StatusUnauthorized, "Invalid API Key")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user set by APIKeyAuth. It must only be called from
// handlers behind that middleware.
func CurrentUser(c *gin.Context) *model.UserProfile {
	return c.MustGet(currentUserKey).(*model.UserProfile)
}

// Recovery turns a panic into a 500 envelope instead of a dropped connection.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		Logger.Log.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Errorf("panic while serving request: %v", recovered)
		AbortWithErrorType(c, http.StatusInternalServerError, ErrorTypeInternal, "Internal server error")
	})
}

// NotFound answers unknown routes with the error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		AbortWithError(c, http.StatusNotFound, "Not Found")
	}
}
