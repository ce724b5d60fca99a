package comment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 注册评论相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewCommentHandler(db)

	comments := r.Group("/articles/:slug/comments")
	{
		comments.GET("", middleware.OptionalJWTAuth(), handler.ListForArticle)
		comments.POST("", middleware.JWTAuth(), handler.Create)
		comments.DELETE("/:commentId", middleware.JWTAuth(), handler.Delete)
	}
}
