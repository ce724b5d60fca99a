package comment

import (
	"gorm.io/gorm"

	articleModel "terminal-terrace/conduit/internal/model/article"
)

// CommentRepository 评论仓储层
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) GetByID(commentID uint) (*articleModel.Comment, error) {
	var comment articleModel.Comment
	err := r.db.First(&comment, commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Create(comment *articleModel.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) Delete(commentID uint) error {
	return r.db.Delete(&articleModel.Comment{}, commentID).Error
}

// ListByArticleID 获取文章全部评论，createdAt 降序
func (r *CommentRepository) ListByArticleID(articleID uint) ([]articleModel.Comment, error) {
	var comments []articleModel.Comment
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
