package article

import "time"

// Favorite 收藏表
// 复合主键是 (article, user) 收藏边唯一性的权威约束，
// 服务层的存在性检查只用于给出明确的错误信息
type Favorite struct {
	UserID    string    `gorm:"type:varchar(36);primaryKey" json:"user_id"`
	ArticleID uint      `gorm:"primaryKey;index" json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
