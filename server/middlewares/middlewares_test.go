package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Luismorlan/tribe/model"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[string]*model.UserProfile
	err   error
}

func (f *fakeUsers) FindUserByAPIKey(ctx context.Context, apiKey string) (*model.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[apiKey], nil
}

func newTestRouter(users UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.NoRoute(NotFound())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	api := router.Group("/api", APIKeyAuth(users))
	api.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": CurrentUser(c).Name})
	})
	return router
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var res ErrorResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestAPIKeyAuth(t *testing.T) {
	users := &fakeUsers{users: map[string]*model.UserProfile{
		"test": {User: model.User{Id: 1, Name: "alice", ApiKey: "test"}},
	}}
	router := newTestRouter(users)

	t.Run("Test Valid Key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Api-Key", "test")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"name":"alice"}`, w.Body.String())
	})

	for name, key := range map[string]string{"Test Missing Key": "", "Test Wrong Key": "nope"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
			if key != "" {
				req.Header.Set(APIKeyHeader, key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Equal(t, ErrorResponse{
				Result:       false,
				ErrorType:    "HTTP_401",
				ErrorMessage: "Invalid API Key",
			}, decodeError(t, w))
		})
	}

	t.Run("Test Lookup Failure", func(t *testing.T) {
		router := newTestRouter(&fakeUsers{err: errors.New("db down")})
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set(APIKeyHeader, "test")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, ErrorTypeDatabase, decodeError(t, w).ErrorType)
	})
}

func TestRecoveryAndNotFound(t *testing.T) {
	router := newTestRouter(&fakeUsers{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, ErrorTypeInternal, decodeError(t, w).ErrorType)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "HTTP_404", decodeError(t, w).ErrorType)
}
