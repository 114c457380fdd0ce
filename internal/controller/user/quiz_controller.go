package user

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

type QuizController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
	statsService      service.StatsService
}

func NewQuizController(quizService service.QuizService, submissionService service.SubmissionService, statsService service.StatsService) *QuizController {
	return &QuizController{
		quizService:       quizService,
		submissionService: submissionService,
		statsService:      statsService,
	}
}

// ListQuizzes godoc
// @Summary List the site's practice quizzes
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizzes, err := c.quizService.List(id.SiteID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// PlayQuiz godoc
// @Summary Get a quiz with its answer key for a practice session
// @Description Practice sessions show correctness immediately on selection, so the key ships with the questions.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizAdminResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/play [get]
func (c *QuizController) PlayQuiz(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetForPlay(id.SiteID, quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuizAttempt godoc
// @Summary Submit a finished practice run
// @Description The answer sheet is scored server side; retakes are unlimited. Answers may be empty; questions without an entry score as skipped.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.AttemptSubmitRequest true "Answer sheet"
// @Success 201 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *QuizController) SubmitQuizAttempt(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	attempt, err := c.submissionService.SubmitQuiz(id.SiteID, id.UserID, id.Name, quizID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// MyQuizHistory godoc
// @Summary The caller's practice history, newest first
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.AttemptResponse
// @Router /my/quiz-attempts [get]
func (c *QuizController) MyQuizHistory(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	attempts, err := c.statsService.QuizHistory(id.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
