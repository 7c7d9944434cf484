package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/internal/apperror"
	csrf "github.com/utrack/gin-csrf"
)

// CSRFField is the form field the token is read from.
const CSRFField = "_csrf"

// CSRF checks the form token on every state-changing request. It must run
// after Sessions, since the token salt lives in the session.
func CSRF(secret string) gin.HandlerFunc {
	return csrf.Middleware(csrf.Options{
		Secret: secret,
		ErrorFunc: func(c *gin.Context) {
			_ = c.Error(apperror.Forbidden("Invalid or missing form token. Reload the page and try again."))
			c.Abort()
		},
	})
}

// CSRFToken returns the token to embed in forms rendered for this request.
func CSRFToken(c *gin.Context) string {
	return csrf.GetToken(c)
}
