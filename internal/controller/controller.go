package controller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/middleware"
	"github.com/lshigami/answerboard/internal/model"
)

// HandlerFunc is a gin handler that reports failure by returning it.
type HandlerFunc func(c *gin.Context) error

// Handle adapts h to gin. A returned error is recorded on the context and
// the chain aborted; middleware.ErrorHandler renders it.
func Handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// UintParam parses a digits-only path parameter. Values that do not fit a
// uint are treated as a missing page.
func UintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, strconv.IntSize)
	if err != nil || v == 0 {
		return 0, apperror.NotFound("Page not found.", err)
	}
	return uint(v), nil
}

// RequireUser returns the logged-in user. Routes behind RequireAuth never
// see the error.
func RequireUser(c *gin.Context) (*model.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperror.Unauthorized("You must be logged in to do that.")
	}
	return user, nil
}

func QuestionPath(id uint) string {
	return fmt.Sprintf("/questions/%d", id)
}
