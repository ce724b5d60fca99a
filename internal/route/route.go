package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"terminal-terrace/conduit/config"
	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/comment"
	"terminal-terrace/conduit/internal/profile"
	"terminal-terrace/conduit/internal/user"
)

func initRoute(r *gin.Engine, db *gorm.DB) {
	api := r.Group("")

	user.RegisterRoutes(api, db)
	article.RegisterRoutes(api, db)
	comment.RegisterRoutes(api, db)
	profile.RegisterRoutes(api, db)
}

func SetupRouter(db *gorm.DB) *gin.Engine {
	if config.Conf != nil && config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		origin = "http://localhost:4100" // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	initRoute(r, db)

	return r
}
