// Package testutil builds a fully wired application over an in-memory
// sqlite database for handler tests.
package testutil

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/answerboard/config"
	"github.com/lshigami/answerboard/database"
	answerctrl "github.com/lshigami/answerboard/internal/controller/answer"
	questionctrl "github.com/lshigami/answerboard/internal/controller/question"
	userctrl "github.com/lshigami/answerboard/internal/controller/user"
	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/repository"
	"github.com/lshigami/answerboard/internal/server"
	"github.com/lshigami/answerboard/internal/service"
	"github.com/lshigami/answerboard/internal/validation"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const Password = "correct-horse-battery"

var csrfInput = regexp.MustCompile(`name="_csrf" value="([^"]*)"`)

// NewDB opens a private, migrated in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func TestConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Port: "0", AllowOrigins: []string{"*"}},
		Session: config.Session{
			Name:       "answerboard_test",
			Secret:     "test-session-secret-0123456789abcdef",
			CSRFSecret: "test-csrf-secret",
			MaxAge:     3600,
		},
	}
}

type App struct {
	DB     *gorm.DB
	Server *httptest.Server
}

// NewApp starts the whole site on an httptest server.
func NewApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewDB(t)
	v := validation.New()

	users := service.NewUserServiceWithCost(repository.NewUserRepository(db), bcrypt.MinCost)
	questionRepo := repository.NewQuestionRepository(db)
	questions := service.NewQuestionService(questionRepo)
	answers := service.NewAnswerService(repository.NewAnswerRepository(db), questionRepo)

	engine, err := server.NewGinEngine(TestConfig(), users)
	require.NoError(t, err)
	server.RegisterRoutes(
		engine,
		answerctrl.NewAnswerController(answers, v),
		questionctrl.NewQuestionController(questions, v),
		userctrl.NewUserController(users, v),
	)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return &App{DB: db, Server: srv}
}

// CreateQuestion inserts a question directly. A zero id lets the database
// pick one.
func (a *App) CreateQuestion(t *testing.T, id, userID uint, title string) *model.Question {
	t.Helper()
	q := &model.Question{ID: id, Title: title, UserID: userID}
	require.NoError(t, a.DB.Create(q).Error)
	return q
}

func (a *App) CreateAnswer(t *testing.T, questionID, userID uint, body string) *model.Answer {
	t.Helper()
	ans := &model.Answer{Body: body, QuestionID: questionID, UserID: userID}
	require.NoError(t, a.DB.Create(ans).Error)
	return ans
}

// Client is a browser-like client: it keeps cookies and does not follow
// redirects, so tests can assert on them.
type Client struct {
	t    *testing.T
	base string
	http *http.Client
}

func (a *App) NewClient(t *testing.T) *Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &Client{
		t:    t,
		base: a.Server.URL,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SignUp registers username through the sign-up form and returns a client
// logged in as that user.
func (a *App) SignUp(t *testing.T, username string) (*Client, *model.User) {
	t.Helper()
	c := a.NewClient(t)
	resp, _ := c.Submit("/users/register", url.Values{
		"username":        {username},
		"email":           {username + "@example.com"},
		"password":        {Password},
		"confirmPassword": {Password},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode, "sign up %s", username)

	var user model.User
	require.NoError(t, a.DB.Where("username = ?", username).First(&user).Error)
	return c, &user
}

// Get fetches path and returns the response with its body read.
func (c *Client) Get(path string) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.http.Get(c.base + path)
	require.NoError(c.t, err)
	return resp, readBody(c.t, resp)
}

// Post sends values as a form without adding a token.
func (c *Client) Post(path string, values url.Values) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.http.PostForm(c.base+path, values)
	require.NoError(c.t, err)
	return resp, readBody(c.t, resp)
}

// Submit posts values with this session's form token, as a browser would.
func (c *Client) Submit(path string, values url.Values) (*http.Response, string) {
	c.t.Helper()
	form := url.Values{}
	for k, v := range values {
		form[k] = v
	}
	form.Set("_csrf", c.Token())
	return c.Post(path, form)
}

// Token reads the form token of the current session from the login page,
// which renders a form for every visitor.
func (c *Client) Token() string {
	c.t.Helper()
	resp, body := c.Get("/users/login")
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	m := csrfInput.FindStringSubmatch(body)
	require.NotNil(c.t, m, "no form token on login page")
	return html.UnescapeString(m[1])
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// Location returns the redirect target path of resp.
func Location(t *testing.T, resp *http.Response) string {
	t.Helper()
	loc := resp.Header.Get("Location")
	if u, err := url.Parse(loc); err == nil && u.Path != "" {
		return u.Path
	}
	return strings.TrimSpace(loc)
}
