package dto

import "time"

// CreateArticleRequest 创建文章请求体，外层包一层 article 字段
type CreateArticleRequest struct {
	Article CreateArticleModel `json:"article" binding:"required"`
}

type CreateArticleModel struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Body        string   `json:"body" binding:"required"`
	TagList     []string `json:"tagList"`
}

// UpdateArticleRequest 更新文章请求体
// 所有字段均可省略，省略的字段不会被修改（稀疏更新）
type UpdateArticleRequest struct {
	Article UpdateArticleModel `json:"article" binding:"required"`
}

type UpdateArticleModel struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Body        *string   `json:"body"`
	TagList     *[]string `json:"tagList"`
}

// ListArticlesQuery 文章列表过滤条件
type ListArticlesQuery struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

// ArticleModel 文章视图模型
// Favorited 和 Author.Following 相对请求者实时计算，从不落库
type ArticleModel struct {
	ID             uint         `json:"id"`
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Body           string       `json:"body"`
	TagList        []string     `json:"tagList"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	Favorited      bool         `json:"favorited"`
	FavoritesCount int          `json:"favoritesCount"`
	Author         ProfileModel `json:"author"`
}

// ArticleResponse 单篇文章响应
type ArticleResponse struct {
	Article ArticleModel `json:"article"`
}

// ArticleListResponse 文章列表响应
type ArticleListResponse struct {
	Articles      []ArticleModel `json:"articles"`
	ArticlesCount int            `json:"articlesCount"`
}
