package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the one place failed requests are turned into responses.
// Handlers and middleware record errors with c.Error and abort; this renders
// the last one as the error page with its mapped status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err
		status := apperror.StatusOf(err)

		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.Err(err).
			Str("request_id", RequestIDFrom(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request failed")

		if c.Writer.Written() {
			return
		}

		page := dto.Page{Title: http.StatusText(status)}
		if _, ok := CurrentUser(c); ok {
			// LoadUser runs after CSRF, so a known user means the token
			// middleware has already been through this request.
			page = NewPage(c, page.Title)
		}
		c.HTML(status, "error", dto.ErrorView{
			Page:    page,
			Status:  status,
			Message: apperror.PublicMessage(err),
		})
	}
}
