package dto

import "time"

// CreateCommentRequest 创建评论请求体
type CreateCommentRequest struct {
	Comment CreateCommentModel `json:"comment" binding:"required"`
}

type CreateCommentModel struct {
	Body string `json:"body" binding:"required"`
}

// CommentModel 评论视图模型
type CommentModel struct {
	ID        uint         `json:"id"`
	Body      string       `json:"body"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
	Author    ProfileModel `json:"author"`
}

// CommentResponse 单条评论响应
type CommentResponse struct {
	Comment CommentModel `json:"comment"`
}

// CommentListResponse 评论列表响应
type CommentListResponse struct {
	Comments []CommentModel `json:"comments"`
}
