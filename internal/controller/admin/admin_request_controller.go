package admin

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminRequestController serves the super-admin review queue for tenant
// provisioning.
type AdminRequestController struct {
	authService service.AuthService
}

func NewAdminRequestController(authService service.AuthService) *AdminRequestController {
	return &AdminRequestController{authService: authService}
}

// ListPending godoc
// @Summary (Super admin) Pending admin signup requests
// @Tags Super Admin
// @Produce json
// @Success 200 {array} dto.AdminRequestResponse
// @Router /superadmin/requests [get]
func (c *AdminRequestController) ListPending(ctx *gin.Context) {
	requests, err := c.authService.ListPendingAdminRequests()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// Approve godoc
// @Summary (Super admin) Approve a request, provisioning the site and its admin
// @Description Creates the site with a fresh join code and the admin account in one transaction.
// @Tags Super Admin
// @Produce json
// @Param request_id path int true "Request ID"
// @Success 200 {object} dto.SiteResponse
// @Router /superadmin/requests/{request_id}/approve [post]
func (c *AdminRequestController) Approve(ctx *gin.Context) {
	requestID, ok := controller.ParseID(ctx, "request_id")
	if !ok {
		return
	}
	site, err := c.authService.ApproveAdminRequest(requestID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, site)
}

// Reject godoc
// @Summary (Super admin) Reject a pending request
// @Tags Super Admin
// @Produce json
// @Param request_id path int true "Request ID"
// @Success 204 "Rejected"
// @Router /superadmin/requests/{request_id}/reject [post]
func (c *AdminRequestController) Reject(ctx *gin.Context) {
	requestID, ok := controller.ParseID(ctx, "request_id")
	if !ok {
		return
	}
	if err := c.authService.RejectAdminRequest(requestID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
