package user

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

type ExamController struct {
	examService       service.ExamService
	submissionService service.SubmissionService
	statsService      service.StatsService
}

func NewExamController(examService service.ExamService, submissionService service.SubmissionService, statsService service.StatsService) *ExamController {
	return &ExamController{
		examService:       examService,
		submissionService: submissionService,
		statsService:      statsService,
	}
}

// ListExams godoc
// @Summary List the site's exams with window status and attempt flags
// @Tags Exams
// @Produce json
// @Success 200 {array} dto.ExamResponse
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	exams, err := c.examService.List(id.SiteID, id.UserID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// TakeExam godoc
// @Summary Get the questions for a scored exam run
// @Description Only available inside the scheduled window and before the caller has an attempt on record. Never includes the answer key.
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 403 {object} dto.ErrorResponse "Window not open or already closed"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Already attempted"
// @Router /exams/{exam_id} [get]
func (c *ExamController) TakeExam(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetForTake(id.SiteID, id.UserID, examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// PracticeExam godoc
// @Summary Replay a closed exam as unscored practice
// @Description Available to everyone on the site once the window has closed; includes the answer key.
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamAdminResponse
// @Failure 403 {object} dto.ErrorResponse "Window has not closed yet"
// @Router /exams/{exam_id}/practice [get]
func (c *ExamController) PracticeExam(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetForPractice(id.SiteID, examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// SubmitExamAttempt godoc
// @Summary Submit a scored exam run
// @Description Scored server side. Exactly one attempt per exam is persisted; a second submission gets 409 with code "already_attempted". Answers may be empty; questions without an entry score as skipped.
// @Tags Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.AttemptSubmitRequest true "Answer sheet"
// @Success 201 {object} dto.AttemptResponse
// @Failure 403 {object} dto.ErrorResponse "Outside the exam window"
// @Failure 409 {object} dto.ErrorResponse "Already attempted"
// @Router /exams/{exam_id}/attempts [post]
func (c *ExamController) SubmitExamAttempt(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	attempt, err := c.submissionService.SubmitExam(id.SiteID, id.UserID, id.Name, examID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// ExamResults godoc
// @Summary Exam leaderboard
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.ExamResultResponse
// @Router /exams/{exam_id}/results [get]
func (c *ExamController) ExamResults(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	results, err := c.statsService.ExamResults(id.SiteID, examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// MyExamResult godoc
// @Summary The caller's scored result and rank for an exam
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResultResponse
// @Failure 404 {object} dto.ErrorResponse "No attempt on record"
// @Router /exams/{exam_id}/my-result [get]
func (c *ExamController) MyExamResult(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	result, err := c.statsService.MyExamResult(id.SiteID, id.UserID, examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
