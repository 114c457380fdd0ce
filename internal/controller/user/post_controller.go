package user

import (
	"net/http"

	"github.com/arefinkhan/examine/internal/controller"
	"github.com/arefinkhan/examine/internal/middleware"
	"github.com/arefinkhan/examine/internal/service"
	"github.com/gin-gonic/gin"
)

// PostController serves the site's announcement feed to participants.
type PostController struct {
	postService service.PostService
}

func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// ListPosts godoc
// @Summary Announcements for the caller's site, newest first
// @Tags Posts
// @Produce json
// @Success 200 {array} dto.PostListItem
// @Router /posts [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	posts, err := c.postService.List(id.SiteID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary Read one announcement in full
// @Tags Posts
// @Produce json
// @Param post_id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /posts/{post_id} [get]
func (c *PostController) GetPost(ctx *gin.Context) {
	id, _ := middleware.CurrentIdentity(ctx)
	postID, ok := controller.ParseID(ctx, "post_id")
	if !ok {
		return
	}
	post, err := c.postService.Get(id.SiteID, postID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}
