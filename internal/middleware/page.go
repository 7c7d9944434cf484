package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/internal/dto"
)

// NewPage fills the fields the layout needs: title, form token and the
// logged-in user.
func NewPage(c *gin.Context, title string) dto.Page {
	page := dto.Page{Title: title, CSRFToken: CSRFToken(c)}
	if user, ok := CurrentUser(c); ok {
		page.CurrentUser = &dto.UserView{ID: user.ID, Username: user.Username}
	}
	return page
}
