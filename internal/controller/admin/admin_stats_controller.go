package admin

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminStatsController serves the site-wide participant overview.
type AdminStatsController struct {
	statsService service.StatsService
}

func NewAdminStatsController(statsService service.StatsService) *AdminStatsController {
	return &AdminStatsController{statsService: statsService}
}

// StudentSummaries godoc
// @Summary (Admin) Per-student attempt overview for the site
// @Description Attempt counts, average percentage and the latest results for every participant.
// @Tags Admin - Stats
// @Produce json
// @Success 200 {array} dto.StudentSummaryResponse
// @Router /admin/stats/students [get]
func (c *AdminStatsController) StudentSummaries(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	summaries, err := c.statsService.StudentSummaries(id.SiteID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}
