package model

import (
	"gorm.io/gorm"
	"terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		&user.FollowedUser{},
		// 文章相关模型
		&article.Article{},
		&article.Tag{},
		&article.ArticleTag{},
		&article.Favorite{},
		&article.Comment{},
	)
	if err != nil {
		return err
	}
	return nil
}
