package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/answerboard/config"
	"github.com/lshigami/answerboard/database"
	_ "github.com/lshigami/answerboard/docs" // Swagger docs - auto-generated
	answerctrl "github.com/lshigami/answerboard/internal/controller/answer"
	questionctrl "github.com/lshigami/answerboard/internal/controller/question"
	userctrl "github.com/lshigami/answerboard/internal/controller/user"
	"github.com/lshigami/answerboard/internal/logger"
	"github.com/lshigami/answerboard/internal/repository"
	"github.com/lshigami/answerboard/internal/server"
	"github.com/lshigami/answerboard/internal/service"
	"github.com/lshigami/answerboard/internal/validation"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title Answerboard
// @version 1.0
// @description Server-rendered Q&A site: questions, answers and accounts. Every POST form carries a _csrf token.
// @contact.name Answerboard maintainers
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// Console logging until the config has been read.
	logger.Init("info", "console")

	app := fx.New(
		fx.NopLogger,

		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			validation.New,
			server.NewGinEngine, // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewUserService,
			service.NewQuestionService,
			service.NewAnswerService,
		),

		// Controllers Layer
		fx.Provide(
			answerctrl.NewAnswerController,
			questionctrl.NewQuestionController,
			userctrl.NewUserController,
		),

		fx.Invoke(
			configureRuntime,
			database.Migrate,
			server.RegisterRoutes,
			StartServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// configureRuntime applies logging settings before the engine is built.
func configureRuntime(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// StartServer ties the HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Answerboard server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return srv.Shutdown(ctx)
		},
	})
}
