package article

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/user"
)

type ArticleHandler struct {
	articleService *ArticleService
}

func NewArticleHandler(db *gorm.DB) *ArticleHandler {
	articleRepo := NewArticleRepository(db)
	tagRepo := NewTagRepository(db)
	userRepo := user.NewUserRepository(db)

	return &ArticleHandler{
		articleService: NewArticleService(articleRepo, tagRepo, userRepo),
	}
}

// List 文章列表
// @Summary 按标签/作者/收藏人过滤的文章列表（分页）
// @Tags Article
// @Produce json
// @Param tag query string false "标签名"
// @Param author query string false "作者用户名"
// @Param favorited query string false "收藏人用户名"
// @Param limit query int false "每页数量" default(20)
// @Param offset query int false "偏移量" default(0)
// @Success 200 {object} dto.ArticleListResponse
// @Router /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	query := dto.ListArticlesQuery{
		Tag:       c.Query("tag"),
		Author:    c.Query("author"),
		Favorited: c.Query("favorited"),
		Limit:     intQuery(c, "limit", 20),
		Offset:    intQuery(c, "offset", 0),
	}

	articles, bizErr := h.articleService.List(middleware.CurrentUserID(c), query)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleListResponse{
		Articles:      articles,
		ArticlesCount: len(articles),
	})
}

// Feed 关注作者的文章流
// @Summary 当前用户关注作者的文章（分页）
// @Tags Article
// @Produce json
// @Param limit query int false "每页数量" default(20)
// @Param offset query int false "偏移量" default(0)
// @Success 200 {object} dto.ArticleListResponse
// @Router /articles/feed [get]
func (h *ArticleHandler) Feed(c *gin.Context) {
	articles, bizErr := h.articleService.Feed(
		middleware.CurrentUserID(c),
		intQuery(c, "limit", 20),
		intQuery(c, "offset", 0),
	)
	if bizErr != nil {
		dto.NotFoundOrErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleListResponse{
		Articles:      articles,
		ArticlesCount: len(articles),
	})
}

// GetBySlug 按 slug 获取文章
// @Summary 按 slug 获取文章（大小写不敏感）
// @Tags Article
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.ArticleResponse
// @Router /articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	art, bizErr := h.articleService.GetBySlug(middleware.CurrentUserID(c), c.Param("slug"))
	if bizErr != nil {
		dto.NotFoundOrErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleResponse{Article: art})
}

// Create 创建文章
// @Summary 创建文章
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "创建文章请求"
// @Success 201 {object} dto.ArticleResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.articleService.Create(middleware.CurrentUserID(c), req.Article)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusCreated, dto.ArticleResponse{Article: art})
}

// Update 更新文章
// @Summary 更新文章（稀疏更新，仅作者可操作）
// @Tags Article
// @Accept json
// @Produce json
// @Param slug path string true "文章 slug"
// @Param request body dto.UpdateArticleRequest true "更新文章请求"
// @Success 200 {object} dto.ArticleResponse
// @Router /articles/{slug} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	art, bizErr := h.articleService.Update(middleware.CurrentUserID(c), c.Param("slug"), req.Article)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleResponse{Article: art})
}

// Delete 删除文章
// @Summary 删除文章（仅作者可操作，评论与收藏级联删除）
// @Tags Article
// @Param slug path string true "文章 slug"
// @Success 204
// @Router /articles/{slug} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	if _, bizErr := h.articleService.Delete(middleware.CurrentUserID(c), c.Param("slug")); bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite 收藏文章
// @Summary 收藏文章
// @Tags Article
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.ArticleResponse
// @Router /articles/{slug}/favorite [post]
func (h *ArticleHandler) Favorite(c *gin.Context) {
	art, bizErr := h.articleService.Favorite(middleware.CurrentUserID(c), c.Param("slug"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleResponse{Article: art})
}

// Unfavorite 取消收藏
// @Summary 取消收藏文章
// @Tags Article
// @Produce json
// @Param slug path string true "文章 slug"
// @Success 200 {object} dto.ArticleResponse
// @Router /articles/{slug}/favorite [delete]
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	art, bizErr := h.articleService.Unfavorite(middleware.CurrentUserID(c), c.Param("slug"))
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleResponse{Article: art})
}

// ListTags 标签列表
// @Summary 全部标签名
// @Tags Tag
// @Produce json
// @Success 200 {object} dto.TagListResponse
// @Router /tags [get]
func (h *ArticleHandler) ListTags(c *gin.Context) {
	tags, bizErr := h.articleService.ListTags()
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	c.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}

// intQuery 解析整型查询参数，非法或缺省时返回默认值
func intQuery(c *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return value
}
