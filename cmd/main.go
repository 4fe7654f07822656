package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/database"
	_ "github.com/quizdeck/quizdeck/docs" // Swagger docs - auto-generated
	"github.com/quizdeck/quizdeck/internal/controller"
	"github.com/quizdeck/quizdeck/internal/logger"
	"github.com/quizdeck/quizdeck/internal/middleware"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/quizdeck/quizdeck/internal/repository"
	"github.com/quizdeck/quizdeck/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizDeck API
// @version 1.0
// @description Quiz administration API: professors author quizzes, students join by code and take them, admins manage the platform.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewProfessorRepository,
			repository.NewStudentRepository,
			repository.NewModuleRepository,
			repository.NewGroupRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewChoiceRepository,
			repository.NewAttemptRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewQuizService,
			service.NewQuestionService,
			service.NewChoiceService,
			service.NewAttemptService,
			service.NewResponseService,
			service.NewAdminService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewQuizController,
			controller.NewQuestionController,
			controller.NewChoiceController,
			controller.NewAttemptController,
			controller.NewResponseController,
			controller.NewAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	questionCtrl *controller.QuestionController,
	choiceCtrl *controller.ChoiceController,
	attemptCtrl *controller.AttemptController,
	responseCtrl *controller.ResponseController,
	adminCtrl *controller.AdminController,
) {
	api := router.Group("/api")

	// Public routes: registration, login, and the read surface students need
	// before they are authenticated (join-code lookup, module/group listings).
	{
		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)

		api.GET("/quizzes/code/:code", quizCtrl.GetByCode)
		api.GET("/quizzes/:id", quizCtrl.Get)

		api.GET("/modules", adminCtrl.ListModules)
		api.GET("/groups", adminCtrl.ListGroups)
		api.GET("/specializations", adminCtrl.ListSpecialities)
	}

	authenticated := api.Group("")
	authenticated.Use(middleware.AuthRequired(cfg))
	{
		authenticated.GET("/auth/profile", authCtrl.Profile)
		authenticated.PUT("/auth/profile", authCtrl.UpdateProfile)

		quizzes := authenticated.Group("/quizzes")
		{
			quizzes.GET("", quizCtrl.List)
			quizzes.POST("", quizCtrl.Create)
			quizzes.PUT("/:id", quizCtrl.Update)
			quizzes.DELETE("/:id", quizCtrl.Delete)
			quizzes.GET("/:id/statistics", quizCtrl.Statistics)
			quizzes.GET("/group/:groupId", quizCtrl.ByGroup)
		}

		questions := authenticated.Group("/questions")
		{
			questions.POST("", questionCtrl.Create)
			questions.POST("/bulk", questionCtrl.BulkCreate)
			questions.GET("/:id", questionCtrl.Get)
			questions.GET("/quiz/:quizId", questionCtrl.GetByQuiz)
			questions.PUT("/:id", questionCtrl.Update)
			questions.DELETE("/:id", questionCtrl.Delete)
		}

		choices := authenticated.Group("/choices")
		{
			choices.POST("", choiceCtrl.Create)
			choices.POST("/bulk", choiceCtrl.BulkCreate)
			choices.GET("/:id", choiceCtrl.Get)
			choices.GET("/question/:questionId", choiceCtrl.GetByQuestion)
			choices.PUT("/:id", choiceCtrl.Update)
			choices.DELETE("/:id", choiceCtrl.Delete)
		}

		attempts := authenticated.Group("/attempts")
		{
			attempts.GET("", attemptCtrl.List)
			attempts.POST("", attemptCtrl.Start)
			attempts.GET("/:id", attemptCtrl.Get)
			attempts.PUT("/:id", attemptCtrl.Update)
			attempts.POST("/:id/finish", attemptCtrl.Finish)
			attempts.DELETE("/:id", attemptCtrl.Delete)
			attempts.GET("/student/:studentId", attemptCtrl.ByStudent)
			attempts.GET("/quiz/:quizId", attemptCtrl.ByQuiz)
		}

		responses := authenticated.Group("/responses")
		{
			responses.GET("", responseCtrl.List)
			responses.POST("", responseCtrl.Submit)
			responses.POST("/bulk", responseCtrl.BulkSubmit)
			responses.GET("/:id", responseCtrl.Get)
			responses.GET("/attempt/:attemptId", responseCtrl.ByAttempt)
			responses.PUT("/:id", responseCtrl.Update)
			responses.DELETE("/:id", responseCtrl.Delete)
		}

		admin := authenticated.Group("/admin")
		admin.Use(middleware.RoleRequired(model.RoleAdmin))
		{
			admin.GET("/stats", adminCtrl.Stats)

			admin.GET("/students", adminCtrl.ListStudents)
			admin.POST("/students", adminCtrl.CreateStudent)
			admin.PUT("/students/:id", adminCtrl.UpdateStudent)
			admin.DELETE("/students/:id", adminCtrl.DeleteStudent)

			admin.GET("/professors", adminCtrl.ListProfessors)
			admin.POST("/professors", adminCtrl.CreateProfessor)
			admin.PUT("/professors/:id", adminCtrl.UpdateProfessor)
			admin.DELETE("/professors/:id", adminCtrl.DeleteProfessor)

			admin.GET("/modules", adminCtrl.ListModules)
			admin.POST("/modules", adminCtrl.CreateModule)
			admin.PUT("/modules/:id", adminCtrl.UpdateModule)
			admin.DELETE("/modules/:id", adminCtrl.DeleteModule)

			admin.GET("/groups", adminCtrl.ListGroups)
			admin.DELETE("/groups/:id", adminCtrl.DeleteGroup)

			// Admin aliases over the shared handlers, so the whole data
			// surface is reachable under one role-guarded prefix.
			admin.GET("/quizzes", quizCtrl.List)
			admin.DELETE("/quizzes/:id", quizCtrl.Delete)
			admin.GET("/questions", questionCtrl.List)
			admin.DELETE("/questions/:id", questionCtrl.Delete)
			admin.GET("/choices", choiceCtrl.List)
			admin.DELETE("/choices/:id", choiceCtrl.Delete)
			admin.GET("/attempts", attemptCtrl.List)
			admin.DELETE("/attempts/:id", attemptCtrl.Delete)
			admin.GET("/responses", responseCtrl.List)
			admin.DELETE("/responses/:id", responseCtrl.Delete)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizDeck API server starting on port %s", cfg.Server.Port)
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
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Professor{},
		&model.Student{},
		&model.Module{},
		&model.Group{},
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
		&model.Attempt{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
