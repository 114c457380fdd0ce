package user

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

// PlayController drives server-side practice sessions: the countdown and
// the answer sheet live on the server, the client only navigates.
type PlayController struct {
	playService service.PlayService
}

func NewPlayController(playService service.PlayService) *PlayController {
	return &PlayController{playService: playService}
}

// StartSession godoc
// @Summary Start a server-driven practice session
// @Description Opens a timed run of the quiz. Starting again abandons any earlier unfinished run of the same quiz.
// @Tags Play
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 201 {object} dto.PlayStateResponse
// @Router /quizzes/{quiz_id}/play-sessions [post]
func (c *PlayController) StartSession(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	quizID, ok := controller.ParseID(ctx, "quiz_id")
	if !ok {
		return
	}
	state, err := c.playService.Start(id.SiteID, id.UserID, id.Name, quizID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// SessionState godoc
// @Summary Current snapshot of a practice session
// @Tags Play
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.PlayStateResponse
// @Router /play-sessions/{session_id} [get]
func (c *PlayController) SessionState(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	state, err := c.playService.State(id.UserID, ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// AnswerQuestion godoc
// @Summary Answer the current question
// @Description Only the first answer per question counts; repeats are ignored.
// @Tags Play
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.PlayAnswerRequest true "Selected option"
// @Success 200 {object} dto.PlayStateResponse
// @Failure 400 {object} dto.ErrorResponse "Option out of range"
// @Router /play-sessions/{session_id}/answer [post]
func (c *PlayController) AnswerQuestion(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	var req dto.PlayAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	state, err := c.playService.Answer(id.UserID, ctx.Param("session_id"), req.SelectedIndex)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// NextQuestion godoc
// @Summary Advance to the next question
// @Description Past the last question the session completes and the attempt is recorded.
// @Tags Play
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.PlayStateResponse
// @Router /play-sessions/{session_id}/next [post]
func (c *PlayController) NextQuestion(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	state, err := c.playService.Next(id.UserID, ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// FinishSession godoc
// @Summary Submit the session early
// @Description Completes the run with the answers given so far; unanswered questions score as skipped.
// @Tags Play
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.PlayStateResponse
// @Router /play-sessions/{session_id}/finish [post]
func (c *PlayController) FinishSession(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	state, err := c.playService.Finish(id.UserID, ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}
