package admin

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/dto"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminPostController manages the site's announcement posts.
type AdminPostController struct {
	postService service.PostService
}

func NewAdminPostController(postService service.PostService) *AdminPostController {
	return &AdminPostController{postService: postService}
}

// CreatePost godoc
// @Summary (Admin) Publish an announcement
// @Tags Admin - Posts
// @Accept json
// @Produce json
// @Param post body dto.PostCreateRequest true "Post"
// @Success 201 {object} dto.PostResponse
// @Router /admin/posts [post]
func (c *AdminPostController) CreatePost(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	var req dto.PostCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	post, err := c.postService.Create(id.SiteID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary (Admin) Rewrite an announcement
// @Tags Admin - Posts
// @Accept json
// @Produce json
// @Param post_id path int true "Post ID"
// @Param post body dto.PostUpdateRequest true "Post"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /admin/posts/{post_id} [put]
func (c *AdminPostController) UpdatePost(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	postID, ok := controller.ParseID(ctx, "post_id")
	if !ok {
		return
	}
	var req dto.PostUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: dto.ErrCodeGeneric})
		return
	}
	post, err := c.postService.Update(id.SiteID, postID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary (Admin) Remove an announcement
// @Tags Admin - Posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 204 "Deleted"
// @Router /admin/posts/{post_id} [delete]
func (c *AdminPostController) DeletePost(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	postID, ok := controller.ParseID(ctx, "post_id")
	if !ok {
		return
	}
	if err := c.postService.Delete(id.SiteID, postID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
