package dto

type RegisterForm struct {
	Username        string `form:"username" validate:"notblank,max=50"`
	Email           string `form:"email" validate:"required,email,max=255"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
}

func (RegisterForm) ValidationMessages() map[string]string {
	return map[string]string{
		"username.notblank":       "Please provide a username",
		"username.max":            "Username must not be more than 50 characters long",
		"email.required":          "Please provide an email address",
		"email.email":             "Email address is not a valid email",
		"email.max":               "Email address must not be more than 255 characters long",
		"password.required":       "Please provide a password",
		"password.min":            "Password must be at least 8 characters long",
		"confirmPassword.eqfield": "Confirm password must match password",
	}
}

type LoginForm struct {
	Username string `form:"username" validate:"notblank"`
	Password string `form:"password" validate:"required"`
}

func (LoginForm) ValidationMessages() map[string]string {
	return map[string]string{
		"username.notblank": "Please provide a username",
		"password.required": "Please provide a password",
	}
}

// UserFormView backs user-login and user-register. Passwords are never
// echoed back.
type UserFormView struct {
	Page
	Username string
	Email    string
	Errors   []string
}
