package user_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_LogsIn(t *testing.T) {
	app := testutil.NewApp(t)
	client, user := app.SignUp(t, "alice")

	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, testutil.Password, string(user.HashedPassword))

	_, page := client.Get("/")
	assert.Contains(t, page, "alice")
	assert.Contains(t, page, "Log out")
}

func TestRegister_ValidationMessages(t *testing.T) {
	app := testutil.NewApp(t)
	client := app.NewClient(t)

	resp, page := client.Submit("/users/register", url.Values{
		"username":        {" "},
		"email":           {"not-an-email"},
		"password":        {"short"},
		"confirmPassword": {"different"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Please provide a username")
	assert.Contains(t, page, "Email address is not a valid email")
	assert.Contains(t, page, "Password must be at least 8 characters long")
	assert.Contains(t, page, "Confirm password must match password")

	var n int64
	require.NoError(t, app.DB.Model(&model.User{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app := testutil.NewApp(t)
	app.SignUp(t, "alice")

	resp, page := app.NewClient(t).Submit("/users/register", url.Values{
		"username":        {"alice"},
		"email":           {"other@example.com"},
		"password":        {testutil.Password},
		"confirmPassword": {testutil.Password},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "The provided username is already in use by another account")
}

func TestLoginAndLogout(t *testing.T) {
	app := testutil.NewApp(t)
	app.SignUp(t, "alice")
	client := app.NewClient(t)

	resp, page := client.Submit("/users/login", url.Values{"username": {"alice"}, "password": {"wrong-password"}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Login failed for the provided username and password")

	resp, _ = client.Submit("/users/login", url.Values{"username": {"alice"}, "password": {testutil.Password}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", testutil.Location(t, resp))

	_, page = client.Get("/")
	assert.Contains(t, page, "Log out")

	resp, _ = client.Submit("/users/logout", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)

	_, page = client.Get("/")
	assert.NotContains(t, page, "Log out")
	assert.Contains(t, page, "Log in")
}

func TestLogin_RequiresToken(t *testing.T) {
	app := testutil.NewApp(t)
	app.SignUp(t, "alice")

	resp, _ := app.NewClient(t).Post("/users/login", url.Values{"username": {"alice"}, "password": {testutil.Password}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
