package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/repository"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminExamController struct {
	examService  service.ExamService
	statsService service.StatsService
	attemptRepo  repository.AttemptRepository
}

func NewAdminExamController(examService service.ExamService, statsService service.StatsService, attemptRepo repository.AttemptRepository) *AdminExamController {
	return &AdminExamController{
		examService:  examService,
		statsService: statsService,
		attemptRepo:  attemptRepo,
	}
}

// CreateExam godoc
// @Summary (Admin) Schedule an exam from uploaded content
// @Description Accepts a JSON body, or multipart/form-data with fields title, scheduled_at (RFC 3339), duration_minutes, input_type, text, manual and an optional xlsx "file".
// @Tags Admin - Exams
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body dto.ExamCreateRequest true "Exam and its content (JSON variant)"
// @Success 201 {object} dto.ExamAdminResponse
// @Failure 422 {object} dto.ContentErrorResponse "Rows rejected by the normalizer"
// @Router /admin/exams [post]
func (c *AdminExamController) CreateExam(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)

	var req dto.ExamCreateRequest
	var file []byte
	if isMultipart(ctx) {
		content, f, ok := bindContentForm(ctx)
		if !ok {
			return
		}
		req.Content = content
		file = f
		req.Title = ctx.PostForm("title")
		scheduledAt, err := time.Parse(time.RFC3339, ctx.PostForm("scheduled_at"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "scheduled_at must be RFC 3339", Code: dto.ErrCodeGeneric})
			return
		}
		req.ScheduledAt = scheduledAt
		req.DurationMinutes, err = strconv.Atoi(ctx.PostForm("duration_minutes"))
		if err != nil || req.DurationMinutes < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "duration_minutes must be a positive integer", Code: dto.ErrCodeGeneric})
			return
		}
		if req.Title == "" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "title is required", Code: dto.ErrCodeGeneric})
			return
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}

	exam, err := c.examService.Create(id.SiteID, req, file)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// GetExam godoc
// @Summary (Admin) Exam details with the answer key
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamAdminResponse
// @Router /admin/exams/{exam_id} [get]
func (c *AdminExamController) GetExam(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetAdmin(id.SiteID, examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// ReplaceExamContent godoc
// @Summary (Admin) Replace an exam's full question set
// @Description Atomic swap, same contract as the quiz variant. Recorded attempts are kept.
// @Tags Admin - Exams
// @Accept json
// @Accept mpfd
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param request body dto.ContentRequest true "Replacement content (JSON variant)"
// @Success 200 {object} dto.ExamAdminResponse
// @Failure 422 {object} dto.ContentErrorResponse "Rows rejected by the normalizer"
// @Router /admin/exams/{exam_id}/content [put]
func (c *AdminExamController) ReplaceExamContent(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	req, file, ok := bindContent(ctx)
	if !ok {
		return
	}
	exam, err := c.examService.ReplaceContent(id.SiteID, examID, req, file)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// UpdateExam godoc
// @Summary (Admin) Reschedule or rename an exam
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param request body dto.ExamUpdateRequest true "New title and schedule"
// @Success 204 "Updated"
// @Router /admin/exams/{exam_id} [patch]
func (c *AdminExamController) UpdateExam(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	if err := c.examService.UpdateSchedule(id.SiteID, examID, req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteExam godoc
// @Summary (Admin) Delete an exam and its questions
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 204 "Deleted"
// @Router /admin/exams/{exam_id} [delete]
func (c *AdminExamController) DeleteExam(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.examService.Delete(id.SiteID, examID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ExportExamCSV godoc
// @Summary (Admin) Export an exam's questions as CSV
// @Tags Admin - Exams
// @Produce plain
// @Param exam_id path int true "Exam ID"
// @Success 200 {string} string "CSV payload"
// @Router /admin/exams/{exam_id}/export.csv [get]
func (c *AdminExamController) ExportExamCSV(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	csv, err := c.examService.ExportCSV(id.SiteID, examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="exam.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(csv))
}

// ExamResults godoc
// @Summary (Admin) Full leaderboard for an exam
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.ExamResultResponse
// @Router /admin/exams/{exam_id}/results [get]
func (c *AdminExamController) ExamResults(ctx *gin.Context) {
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

// DeleteExamAttempt godoc
// @Summary (Admin) Remove a recorded exam attempt
// @Description Hard delete. The participant may then attempt the exam again while the window is open.
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param attempt_id path int true "Attempt ID"
// @Success 204 "Deleted"
// @Router /admin/exams/{exam_id}/attempts/{attempt_id} [delete]
func (c *AdminExamController) DeleteExamAttempt(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	attemptID, ok := controller.ParseID(ctx, "attempt_id")
	if !ok {
		return
	}
	// Resolve the exam first so the site check applies before any delete.
	if _, err := c.examService.GetAdmin(id.SiteID, examID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if err := c.attemptRepo.DeleteExamAttempt(examID, attemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			controller.RespondError(ctx, service.ErrNotFound)
			return
		}
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
