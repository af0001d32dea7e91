package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Luismorlan/tribe/server/metrics"
	"github.com/Luismorlan/tribe/server/middlewares"
	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/gin-gonic/gin"
)

// parseID reads the ":id" path param. It answers 422 and returns false when
// the param is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		middlewares.AbortWithErrorType(c, http.StatusUnprocessableEntity, middlewares.ErrorTypeValidation,
			fmt.Sprintf("invalid id %q", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

func abortDatabaseError(c *gin.Context, err error) {
	Logger.Log.WithError(err).WithField("path", c.FullPath()).Error("database error")
	middlewares.AbortWithErrorType(c, http.StatusInternalServerError, middlewares.ErrorTypeDatabase, "Database error occurred")
}

func (s *Server) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"user":   NewUserView(middlewares.CurrentUser(c)),
	})
}

func (s *Server) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := s.Store.FindUserByID(c.Request.Context(), id)
	if err != nil {
		abortDatabaseError(c, err)
		return
	}
	if user == nil {
		middlewares.AbortWithError(c, http.StatusNotFound, fmt.Sprintf("User with ID %d not found", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"user":   NewUserView(user),
	})
}

func (s *Server) FollowUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	me := middlewares.CurrentUser(c)
	if id == me.Id {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Cannot follow yourself")
		return
	}

	target, err := s.Store.FindUserByID(c.Request.Context(), id)
	if err != nil {
		abortDatabaseError(c, err)
		return
	}
	if target == nil {
		middlewares.AbortWithError(c, http.StatusNotFound, "User to follow not found")
		return
	}

	if !s.Store.Follow(c.Request.Context(), me.Id, id) {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not follow user")
		return
	}
	s.Metrics.Observe(metrics.EventFollow)
	c.JSON(http.StatusCreated, gin.H{"result": true})
}

func (s *Server) UnfollowUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !s.Store.Unfollow(c.Request.Context(), middlewares.CurrentUser(c).Id, id) {
		middlewares.AbortWithError(c, http.StatusBadRequest, "Could not unfollow user")
		return
	}
	s.Metrics.Observe(metrics.EventUnfollow)
	c.JSON(http.StatusOK, gin.H{"result": true})
}
