package user

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

type HintController struct {
	hintService service.HintService
}

func NewHintController(hintService service.HintService) *HintController {
	return &HintController{hintService: hintService}
}

// QuestionHint godoc
// @Summary AI-generated hint for a question
// @Description Generates (and caches) a hint that nudges without revealing the answer.
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} dto.ErrorResponse "Hint generation not configured"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id}/hint [get]
func (c *HintController) QuestionHint(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	hint, err := c.hintService.HintForQuestion(ctx.Request.Context(), id.SiteID, questionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hint)
}
