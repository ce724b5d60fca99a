package comment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/response"
)

type CommentHandler struct {
	commentService *CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	commentRepo := NewCommentRepository(db)
	articleRepo := article.NewArticleRepository(db)
	userRepo := user.NewUserRepository(db)

	return &CommentHandler{
		commentService: NewCommentService(commentRepo, articleRepo, userRepo),
	}
}

// Create 创建评论
// @Summary 在文章下创建评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param slug path string true "文章 slug"
// @Param request body dto.CreateCommentRequest true "创建评论请求"
// @Success 201 {object} dto.CommentResponse
// @Router /articles/{slug}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	comment, bizErr := h.commentService.Create(
		middleware.CurrentUserID(c),
		c.Param("slug"),
		req.Comment.Body,
	)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, dto.CommentResponse{Comment: comment})
}

// Delete 删除评论
// @Summary 删除评论（仅评论作者可操作）
// @Tags Comment
// @Param slug path string true "文章 slug"
// @Param commentId path int true "评论ID"
// @Success 204
// @Router /articles/{slug}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil || commentID < 1 {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("The comment id must be a positive integer."),
		))
		return
	}

	if _, bizErr := h.commentService.Delete(
		middleware.CurrentUserID(c),
		c.Param("slug"),
		uint(commentID),
	); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListForArticle 文章评论列表
// @Summary 获取文章全部评论
// @Tags Comment
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.CommentListResponse
// @Router /articles/{slug}/comments [get]
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	comments, bizErr := h.commentService.ListForArticle(
		middleware.CurrentUserID(c),
		c.Param("slug"),
	)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.CommentListResponse{Comments: comments})
}
