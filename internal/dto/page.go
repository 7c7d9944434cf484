package dto

// Page is embedded in every view model; the layout reads these fields.
type Page struct {
	Title       string
	CSRFToken   string
	CurrentUser *UserView
}

type UserView struct {
	ID       uint
	Username string
}

// ErrorView is rendered by the error-handling middleware.
type ErrorView struct {
	Page
	Status  int
	Message string
}
