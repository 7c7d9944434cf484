package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/controller"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/middleware"
	"github.com/lshigami/answerboard/internal/service"
	"github.com/lshigami/answerboard/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	titleLogin    = "Log in"
	titleRegister = "Sign up"
)

type UserController struct {
	users     service.UserService
	validator *validation.Validator
}

func NewUserController(users service.UserService, v *validation.Validator) *UserController {
	return &UserController{users: users, validator: v}
}

func (ctl *UserController) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	users.GET("/register", controller.Handle(ctl.RegisterForm))
	users.POST("/register", controller.Handle(ctl.Register))
	users.GET("/login", controller.Handle(ctl.LoginForm))
	users.POST("/login", controller.Handle(ctl.Login))
	users.POST("/logout", controller.Handle(ctl.Logout))
}

// RegisterForm godoc
// @Summary Show the sign-up form
// @Tags Users
// @Produce html
// @Success 200 {string} string "user-register page"
// @Router /users/register [get]
func (ctl *UserController) RegisterForm(c *gin.Context) error {
	c.HTML(http.StatusOK, "user-register", dto.UserFormView{Page: middleware.NewPage(c, titleRegister)})
	return nil
}

// Register godoc
// @Summary Create an account and log in
// @Tags Users
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param email formData string true "Email address"
// @Param password formData string true "Password, at least 8 characters"
// @Param confirmPassword formData string true "Password again"
// @Param _csrf formData string true "Form token"
// @Success 200 {string} string "user-register page with validation messages"
// @Success 302 {string} string "Redirect to the home page"
// @Router /users/register [post]
func (ctl *UserController) Register(c *gin.Context) error {
	var form dto.RegisterForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		return apperror.BadRequest("Invalid form submission.", err)
	}

	messages := ctl.validator.Validate(form)
	if len(messages) == 0 {
		user, err := ctl.users.Register(c.Request.Context(), form)
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			messages = append(messages, "The provided username is already in use by another account")
		case errors.Is(err, service.ErrEmailTaken):
			messages = append(messages, "The provided email address is already in use by another account")
		case err != nil:
			return err
		default:
			if err := middleware.LogIn(c, user); err != nil {
				return err
			}
			c.Redirect(http.StatusFound, "/")
			return nil
		}
	}

	c.HTML(http.StatusOK, "user-register", dto.UserFormView{
		Page:     middleware.NewPage(c, titleRegister),
		Username: form.Username,
		Email:    form.Email,
		Errors:   messages,
	})
	return nil
}

// LoginForm godoc
// @Summary Show the login form
// @Tags Users
// @Produce html
// @Success 200 {string} string "user-login page"
// @Router /users/login [get]
func (ctl *UserController) LoginForm(c *gin.Context) error {
	c.HTML(http.StatusOK, "user-login", dto.UserFormView{Page: middleware.NewPage(c, titleLogin)})
	return nil
}

// Login godoc
// @Summary Log in
// @Tags Users
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param _csrf formData string true "Form token"
// @Success 200 {string} string "user-login page with validation messages"
// @Success 302 {string} string "Redirect to the home page"
// @Router /users/login [post]
func (ctl *UserController) Login(c *gin.Context) error {
	var form dto.LoginForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		return apperror.BadRequest("Invalid form submission.", err)
	}

	messages := ctl.validator.Validate(form)
	if len(messages) == 0 {
		user, err := ctl.users.Authenticate(c.Request.Context(), form.Username, form.Password)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			messages = append(messages, "Login failed for the provided username and password")
		case err != nil:
			return err
		default:
			if err := middleware.LogIn(c, user); err != nil {
				return err
			}
			log.Ctx(c.Request.Context()).Info().Uint("userID", user.ID).Msg("User logged in")
			c.Redirect(http.StatusFound, "/")
			return nil
		}
	}

	c.HTML(http.StatusOK, "user-login", dto.UserFormView{
		Page:     middleware.NewPage(c, titleLogin),
		Username: form.Username,
		Errors:   messages,
	})
	return nil
}

// Logout godoc
// @Summary Log out
// @Tags Users
// @Accept x-www-form-urlencoded
// @Param _csrf formData string true "Form token"
// @Success 302 {string} string "Redirect to the home page"
// @Router /users/logout [post]
func (ctl *UserController) Logout(c *gin.Context) error {
	if err := middleware.LogOut(c); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, "/")
	return nil
}
