package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/middleware"
)

// RegisterRoutes 注册用户相关路由
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	handler := NewUserHandler(db)

	users := r.Group("/users")
	{
		users.POST("", handler.Register)
		users.POST("/login", handler.Login)
	}

	current := r.Group("/user", middleware.JWTAuth())
	{
		current.GET("", handler.GetCurrent)
		current.PUT("", handler.Update)
	}
}
