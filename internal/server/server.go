package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/config"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/controller"
	answerctrl "github.com/lshigami/answerboard/internal/controller/answer"
	questionctrl "github.com/lshigami/answerboard/internal/controller/question"
	userctrl "github.com/lshigami/answerboard/internal/controller/user"
	"github.com/lshigami/answerboard/internal/middleware"
	"github.com/lshigami/answerboard/internal/service"
	"github.com/lshigami/answerboard/internal/view"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewGinEngine builds the engine with templates and the global middleware
// chain. Order matters: errors are rendered by ErrorHandler, which needs to
// wrap the session, CSRF and user middleware; CSRF must run before LoadUser.
func NewGinEngine(cfg *config.Config, users service.UserService) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Sessions(cfg.Session))
	r.Use(middleware.CSRF(cfg.Session.CSRFSecret))
	r.Use(middleware.LoadUser(users))

	r.NoRoute(controller.Handle(func(c *gin.Context) error {
		return apperror.NotFound("Page not found.", nil)
	}))

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-CSRF-Token", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			conf.AllowAllOrigins = true
			return conf
		}
	}
	if len(origins) == 0 {
		conf.AllowAllOrigins = true
		return conf
	}
	conf.AllowOrigins = origins
	conf.AllowCredentials = true
	return conf
}

// RegisterRoutes mounts every page plus the operational endpoints.
func RegisterRoutes(
	router *gin.Engine,
	answers *answerctrl.AnswerController,
	questions *questionctrl.QuestionController,
	users *userctrl.UserController,
) {
	router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", middleware.NewPage(c, "Answerboard"))
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Swagger UI: /swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	answers.RegisterRoutes(router)
	questions.RegisterRoutes(router)
	users.RegisterRoutes(router)
}
