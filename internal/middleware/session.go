package middleware

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/config"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/model"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	sessionUserKey = "userID"
	currentUserKey = "currentUser"

	LoginPath = "/users/login"
)

// UserFinder resolves the user id stored in the session.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// Sessions installs the signed cookie session store.
func Sessions(cfg config.Session) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(cfg.Name, store)
}

// LoadUser puts the logged-in user, if any, into the gin context. A session
// pointing at a user that no longer exists is logged out.
func LoadUser(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, ok := session.Get(sessionUserKey).(uint)
		if !ok {
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(currentUserKey, user)
		case apperror.IsKind(err, apperror.KindNotFound):
			log.Ctx(c.Request.Context()).Info().Uint("userID", id).Msg("Dropping session of unknown user")
			session.Delete(sessionUserKey)
			if err := session.Save(); err != nil {
				_ = c.Error(errors.Wrap(err, "save session"))
				c.Abort()
				return
			}
		default:
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuth redirects anonymous visitors to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}

// LogIn records user as the session owner.
func LogIn(c *gin.Context, user *model.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	c.Set(currentUserKey, user)
	return errors.Wrap(session.Save(), "save session")
}

func LogOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	c.Set(currentUserKey, (*model.User)(nil))
	return errors.Wrap(session.Save(), "save session")
}
