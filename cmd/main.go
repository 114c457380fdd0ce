package main

import (
	"context"
	"net/http"
	"time"

	"github.com/arefinkhan/examine/config"
	"github.com/arefinkhan/examine/database"
	_ "github.com/arefinkhan/examine/docs" // Swagger docs - auto-generated
	adminctrl "github.com/arefinkhan/examine/internal/controller/admin"
	userctrl "github.com/arefinkhan/examine/internal/controller/user"
	"github.com/arefinkhan/examine/internal/logger"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/model"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Examine API
// @version 1.0
// @description Multi-tenant quiz and timed exam platform: content ingestion, scheduled exam windows, single-attempt scoring and leaderboards.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSiteRepository,
			repository.NewUserRepository,
			repository.NewAdminRequestRepository,
			repository.NewQuizRepository,
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewPostRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewContentService,
			service.NewQuizService,
			service.NewExamService,
			service.NewSubmissionService,
			service.NewStatsService,
			service.NewHintService,
			service.NewPostService,
			service.NewPlayService,
			func(userRepo repository.UserRepository, siteRepo repository.SiteRepository, requestRepo repository.AdminRequestRepository, db *gorm.DB) service.AuthService {
				return service.NewAuthService(userRepo, siteRepo, requestRepo, db)
			},
		),

		// Middleware and Controllers Layer
		fx.Provide(
			middleware.NewSession,
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewExamController,
			userctrl.NewHintController,
			userctrl.NewPostController,
			userctrl.NewPlayController,
			adminctrl.NewAdminQuizController,
			adminctrl.NewAdminExamController,
			adminctrl.NewAdminRequestController,
			adminctrl.NewAdminStatsController,
			adminctrl.NewAdminPostController,
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
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
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
	session *middleware.Session,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	examCtrl *userctrl.ExamController,
	hintCtrl *userctrl.HintController,
	postCtrl *userctrl.PostController,
	playCtrl *userctrl.PlayController,
	adminQuizCtrl *adminctrl.AdminQuizController,
	adminExamCtrl *adminctrl.AdminExamController,
	adminReqCtrl *adminctrl.AdminRequestController,
	adminStatsCtrl *adminctrl.AdminStatsController,
	adminPostCtrl *adminctrl.AdminPostController,
) {
	api := router.Group("/api/v1")

	// Open endpoints: account creation and sign-in.
	api.POST("/auth/signup", authCtrl.Signup)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)
	api.POST("/auth/admin-requests", authCtrl.RequestAdmin)

	// Signed-in participants.
	authed := api.Group("")
	authed.Use(session.RequireUser())
	{
		authed.GET("/auth/me", authCtrl.Me)

		authed.GET("/quizzes", quizCtrl.ListQuizzes)
		authed.GET("/quizzes/:quiz_id/play", quizCtrl.PlayQuiz)
		authed.POST("/quizzes/:quiz_id/attempts", quizCtrl.SubmitQuizAttempt)
		authed.GET("/my/quiz-attempts", quizCtrl.MyQuizHistory)

		authed.POST("/quizzes/:quiz_id/play-sessions", playCtrl.StartSession)
		authed.GET("/play-sessions/:session_id", playCtrl.SessionState)
		authed.POST("/play-sessions/:session_id/answer", playCtrl.AnswerQuestion)
		authed.POST("/play-sessions/:session_id/next", playCtrl.NextQuestion)
		authed.POST("/play-sessions/:session_id/finish", playCtrl.FinishSession)

		authed.GET("/exams", examCtrl.ListExams)
		authed.GET("/exams/:exam_id", examCtrl.TakeExam)
		authed.GET("/exams/:exam_id/practice", examCtrl.PracticeExam)
		authed.POST("/exams/:exam_id/attempts", examCtrl.SubmitExamAttempt)
		authed.GET("/exams/:exam_id/results", examCtrl.ExamResults)
		authed.GET("/exams/:exam_id/my-result", examCtrl.MyExamResult)

		authed.GET("/questions/:question_id/hint", hintCtrl.QuestionHint)

		authed.GET("/posts", postCtrl.ListPosts)
		authed.GET("/posts/:post_id", postCtrl.GetPost)
	}

	// Site administrators.
	admin := api.Group("/admin")
	admin.Use(session.RequireUser(), session.RequireAdmin())
	{
		admin.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		admin.GET("/quizzes/:quiz_id", adminQuizCtrl.GetQuiz)
		admin.PUT("/quizzes/:quiz_id/content", adminQuizCtrl.ReplaceQuizContent)
		admin.PATCH("/quizzes/:quiz_id", adminQuizCtrl.UpdateQuiz)
		admin.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
		admin.GET("/quizzes/:quiz_id/export.csv", adminQuizCtrl.ExportQuizCSV)
		admin.GET("/quizzes/:quiz_id/results", adminQuizCtrl.QuizResults)
		admin.DELETE("/quizzes/:quiz_id/attempts/:attempt_id", adminQuizCtrl.DeleteQuizAttempt)

		admin.POST("/exams", adminExamCtrl.CreateExam)
		admin.GET("/exams/:exam_id", adminExamCtrl.GetExam)
		admin.PUT("/exams/:exam_id/content", adminExamCtrl.ReplaceExamContent)
		admin.PATCH("/exams/:exam_id", adminExamCtrl.UpdateExam)
		admin.DELETE("/exams/:exam_id", adminExamCtrl.DeleteExam)
		admin.GET("/exams/:exam_id/export.csv", adminExamCtrl.ExportExamCSV)
		admin.GET("/exams/:exam_id/results", adminExamCtrl.ExamResults)
		admin.DELETE("/exams/:exam_id/attempts/:attempt_id", adminExamCtrl.DeleteExamAttempt)

		admin.GET("/stats/students", adminStatsCtrl.StudentSummaries)

		admin.POST("/posts", adminPostCtrl.CreatePost)
		admin.PUT("/posts/:post_id", adminPostCtrl.UpdatePost)
		admin.DELETE("/posts/:post_id", adminPostCtrl.DeletePost)
	}

	// Super admin: tenant provisioning queue.
	superadmin := api.Group("/superadmin")
	superadmin.Use(session.RequireUser(), session.RequireSuperAdmin())
	{
		superadmin.GET("/requests", adminReqCtrl.ListPending)
		superadmin.POST("/requests/:request_id/approve", adminReqCtrl.Approve)
		superadmin.POST("/requests/:request_id/reject", adminReqCtrl.Reject)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Examine API server starting on port %s", cfg.Server.Port)
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
		&model.Site{},
		&model.User{},
		&model.AdminRequest{},
		&model.Quiz{},
		&model.Exam{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.ExamAttempt{},
		&model.Post{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
