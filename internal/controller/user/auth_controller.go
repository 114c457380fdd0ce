package user

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
	session     *middleware.Session
}

func NewAuthController(authService service.AuthService, session *middleware.Session) *AuthController {
	return &AuthController{authService: authService, session: session}
}

// Signup godoc
// @Summary Register a student account on a site
// @Description Creates the account using the site's join code and signs the caller in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown site code or email already registered"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	user, err := c.authService.SignupStudent(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	c.session.SetCookie(ctx, user.PublicID)
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	user, err := c.authService.Login(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	c.session.SetCookie(ctx, user.PublicID)
	ctx.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 204 "Cookie cleared"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.session.ClearCookie(ctx)
	ctx.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current signed-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	ctx.JSON(http.StatusOK, dto.UserResponse{
		ID:      id.UserID,
		Name:    id.Name,
		Email:   id.Email,
		SiteID:  id.SiteID,
		IsAdmin: id.IsAdmin,
	})
}

// RequestAdmin godoc
// @Summary Request an admin account and a new site
// @Description Queues the request for super-admin review; no account exists until approval.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.AdminSignupRequest true "Admin signup details"
// @Success 202 {object} dto.AdminRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/admin-requests [post]
func (c *AuthController) RequestAdmin(ctx *gin.Context) {
	var req dto.AdminSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	resp, err := c.authService.RequestAdmin(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, resp)
}
