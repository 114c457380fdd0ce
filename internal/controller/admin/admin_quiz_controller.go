package admin

import (
	"errors"
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminQuizController struct {
	quizService  service.QuizService
	statsService service.StatsService
	attemptRepo  repository.AttemptRepository
}

func NewAdminQuizController(quizService service.QuizService, statsService service.StatsService, attemptRepo repository.AttemptRepository) *AdminQuizController {
	return &AdminQuizController{quizService: quizService, statsService: statsService, attemptRepo: attemptRepo}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz from uploaded content
// @Description Accepts a JSON body, or multipart/form-data with fields title, input_type, text, manual and an optional xlsx "file".
// @Tags Admin - Quizzes
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body dto.QuizCreateRequest true "Quiz and its content (JSON variant)"
// @Success 201 {object} dto.QuizAdminResponse
// @Failure 422 {object} dto.ContentErrorResponse "Rows rejected by the normalizer"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)

	var req dto.QuizCreateRequest
	var file []byte
	if isMultipart(ctx) {
		content, f, ok := bindContentForm(ctx)
		if !ok {
			return
		}
		req.Title = ctx.PostForm("title")
		req.Content = content
		file = f
		if req.Title == "" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "title is required", Code: dto.ErrCodeGeneric})
			return
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}

	quiz, err := c.quizService.Create(id.SiteID, req, file)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary (Admin) Quiz details with the answer key
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizAdminResponse
// @Router /admin/quizzes/{quiz_id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
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

// ReplaceQuizContent godoc
// @Summary (Admin) Replace a quiz's full question set
// @Description The swap is atomic: readers see the old set or the new set, never a partial one. Existing attempts are kept.
// @Tags Admin - Quizzes
// @Accept json
// @Accept mpfd
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param request body dto.ContentRequest true "Replacement content (JSON variant)"
// @Success 200 {object} dto.QuizAdminResponse
// @Failure 422 {object} dto.ContentErrorResponse "Rows rejected by the normalizer"
// @Router /admin/quizzes/{quiz_id}/content [put]
func (c *AdminQuizController) ReplaceQuizContent(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	req, file, ok := bindContent(ctx)
	if !ok {
		return
	}
	quiz, err := c.quizService.ReplaceContent(id.SiteID, quizID, req, file)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary (Admin) Rename a quiz
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param request body dto.QuizUpdateRequest true "New title"
// @Success 204 "Updated"
// @Router /admin/quizzes/{quiz_id} [patch]
func (c *AdminQuizController) UpdateQuiz(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuizUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	if err := c.quizService.UpdateTitle(id.SiteID, quizID, req.Title); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and its questions
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	if err := c.quizService.Delete(id.SiteID, quizID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ExportQuizCSV godoc
// @Summary (Admin) Export a quiz's questions as CSV
// @Description The export round-trips: re-importing it as input_type=csv reproduces the same question set.
// @Tags Admin - Quizzes
// @Produce plain
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {string} string "CSV payload"
// @Router /admin/quizzes/{quiz_id}/export.csv [get]
func (c *AdminQuizController) ExportQuizCSV(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	csv, err := c.quizService.ExportCSV(id.SiteID, quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="quiz.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(csv))
}

// QuizResults godoc
// @Summary (Admin) All attempts recorded for a quiz
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.AttemptResponse
// @Router /admin/quizzes/{quiz_id}/results [get]
func (c *AdminQuizController) QuizResults(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	results, err := c.statsService.QuizResults(id.SiteID, quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// DeleteQuizAttempt godoc
// @Summary (Admin) Remove a recorded practice attempt
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param attempt_id path int true "Attempt ID"
// @Success 204 "Deleted"
// @Router /admin/quizzes/{quiz_id}/attempts/{attempt_id} [delete]
func (c *AdminQuizController) DeleteQuizAttempt(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	attemptID, ok := controller.ParseID(ctx, "attempt_id")
	if !ok {
		return
	}
	// Resolve the quiz first so the site check applies before any delete.
	if _, err := c.quizService.Get(id.SiteID, quizID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if err := c.attemptRepo.DeleteQuizAttempt(quizID, attemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.RespondError(ctx, service.ErrNotFound)
			return
		}
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
