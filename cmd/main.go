package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockround/config"
	"github.com/lshigami/mockround/database"
	_ "github.com/lshigami/mockround/docs" // Swagger docs
	"github.com/lshigami/mockround/internal/controller"
	adminctrl "github.com/lshigami/mockround/internal/controller/admin"
	userctrl "github.com/lshigami/mockround/internal/controller/user"
	"github.com/lshigami/mockround/internal/event"
	"github.com/lshigami/mockround/internal/logger"
	"github.com/lshigami/mockround/internal/metrics"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/lshigami/mockround/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Mock Interview Practice API
// @version 1.0
// @description Company interview templates with scored rounds, code execution and LLM feedback.
// @contact.name API Support
// @contact.url http://example.com/support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			metrics.New,
			event.NewPublisher,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionBankRepository,
			repository.NewQuestionRepository,
			repository.NewPromptTemplateRepository,
			repository.NewInterviewTemplateRepository,
			repository.NewRoundSubmissionRepository,
			repository.NewRoundFeedbackRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiLLMService,
			service.NewJudgeService,
			service.NewQuestionBankService,
			service.NewPromptTemplateService,
			service.NewInterviewTemplateService,
			service.NewRoundSubmissionService,
			service.NewFeedbackService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewQuestionBankController,
			adminctrl.NewPromptTemplateController,
			adminctrl.NewInterviewTemplateController,
			userctrl.NewInterviewController,
			userctrl.NewCodeController,
		),

		fx.Invoke(
			func(cfg *config.Config) { logger.Init(cfg.LogLevel) },
			controller.RegisterValidators,
			AutoMigrateDB,
			RegisterRoutesAndStartServer,
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
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(m.GinMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", controller.UserIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(m.Handler()))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	publisher event.Publisher,
	questionBankCtrl *adminctrl.QuestionBankController,
	promptTemplateCtrl *adminctrl.PromptTemplateController,
	interviewTemplateCtrl *adminctrl.InterviewTemplateController,
	interviewCtrl *userctrl.InterviewController,
	codeCtrl *userctrl.CodeController,
) {
	router.GET("/healthz", controller.Health(db))

	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	questionBankCtrl.RegisterRoutes(adminAPIGroup)
	promptTemplateCtrl.RegisterRoutes(adminAPIGroup)
	interviewTemplateCtrl.RegisterRoutes(adminAPIGroup)

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	interviewCtrl.RegisterRoutes(userAPIGroup)
	codeCtrl.RegisterRoutes(userAPIGroup)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview practice API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			if errClose := publisher.Close(); errClose != nil {
				log.Warn().Err(errClose).Msg("Failed to close event publisher")
			}
			return err
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.QuestionBank{},
		&model.Question{},
		&model.PromptTemplate{},
		&model.InterviewTemplate{},
		&model.Round{},
		&model.RoundSubmission{},
		&model.RoundFeedback{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
