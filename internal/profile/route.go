package profile

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 注册用户资料与关注相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewProfileHandler(db)

	profiles := r.Group("/profiles")
	{
		profiles.GET("/:username", middleware.OptionalJWTAuth(), handler.View)
		profiles.POST("/:username/follow", middleware.JWTAuth(), handler.Follow)
		profiles.DELETE("/:username/follow", middleware.JWTAuth(), handler.Unfollow)
	}
}
