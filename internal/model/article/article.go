// Package article 文章相关模型
package article

import "time"

// Article 文章表
type Article struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// slug 由标题生成（小写、空格转连字符），查询时不区分大小写
	Slug        string    `gorm:"type:varchar(255);not null;index" json:"slug"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:varchar(512)" json:"description"`
	Body        string    `gorm:"type:text" json:"body"`
	AuthorID    string    `gorm:"type:varchar(36);not null;index" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Comment 文章评论表
// 文章删除时评论随之级联删除
type Comment struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	AuthorID  string     `gorm:"type:varchar(36);not null;index" json:"author_id"`
	ArticleID uint       `gorm:"not null;index" json:"article_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
