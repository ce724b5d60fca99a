package article

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 注册文章与标签相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewArticleHandler(db)

	articles := r.Group("/articles")
	{
		articles.GET("", middleware.OptionalJWTAuth(), handler.List)
		articles.GET("/feed", middleware.JWTAuth(), handler.Feed)
		articles.GET("/:slug", middleware.OptionalJWTAuth(), handler.GetBySlug)

		articles.POST("", middleware.JWTAuth(), handler.Create)
		articles.PUT("/:slug", middleware.JWTAuth(), handler.Update)
		articles.DELETE("/:slug", middleware.JWTAuth(), handler.Delete)

		articles.POST("/:slug/favorite", middleware.JWTAuth(), handler.Favorite)
		articles.DELETE("/:slug/favorite", middleware.JWTAuth(), handler.Unfavorite)
	}

	r.GET("/tags", handler.ListTags)
}
