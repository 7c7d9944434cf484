package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/internal/apperror"
)

// NumericParam rejects the request with 404 when any of the named path
// parameters is present but not a string of decimal digits.
func NumericParam(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			if v := c.Param(name); v != "" && !isDigits(v) {
				_ = c.Error(apperror.NotFound("Page not found.", nil))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
