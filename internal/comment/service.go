package comment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/article"
	"terminal-terrace/conduit/internal/dto"
	articleModel "terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/response"
)

// CommentService 评论服务
// Author.Following 始终相对请求者计算，匿名访问时恒为 false
type CommentService struct {
	commentRepo *CommentRepository
	articleRepo *article.ArticleRepository
	userRepo    *user.UserRepository
}

func NewCommentService(
	commentRepo *CommentRepository,
	articleRepo *article.ArticleRepository,
	userRepo *user.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

// Create 在文章下创建评论
func (s *CommentService) Create(authorID, slug, body string) (dto.CommentModel, *response.BusinessError) {
	if _, bizErr := s.findUser(authorID); bizErr != nil {
		return dto.CommentModel{}, bizErr
	}

	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return dto.CommentModel{}, bizErr
	}

	if strings.TrimSpace(body) == "" {
		return dto.CommentModel{}, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("The comment body must not be blank."),
		)
	}

	now := time.Now()
	comment := &articleModel.Comment{
		Body:      body,
		AuthorID:  authorID,
		ArticleID: art.ID,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return dto.CommentModel{}, infraError(err)
	}

	models, bizErr := s.renderMany(authorID, []articleModel.Comment{*comment})
	if bizErr != nil {
		return dto.CommentModel{}, bizErr
	}
	return models[0], nil
}

// Delete 删除评论，仅评论作者可操作
func (s *CommentService) Delete(deletingUserID, slug string, commentID uint) (uint, *response.BusinessError) {
	if _, bizErr := s.findUser(deletingUserID); bizErr != nil {
		return 0, bizErr
	}

	// 先确认评论所属的文章存在
	if _, bizErr := s.findArticle(slug); bizErr != nil {
		return 0, bizErr
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage(fmt.Sprintf("No comment with an id of '%d' was found.", commentID)),
			)
		}
		return 0, infraError(err)
	}

	if comment.AuthorID != deletingUserID {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("You must be the author of the comment in order to delete it."),
		)
	}

	if err := s.commentRepo.Delete(comment.ID); err != nil {
		return 0, infraError(err)
	}
	return comment.ID, nil
}

// ListForArticle 获取文章全部评论，视图相对 viewer 渲染
func (s *CommentService) ListForArticle(viewerID, slug string) ([]dto.CommentModel, *response.BusinessError) {
	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return nil, bizErr
	}

	comments, err := s.commentRepo.ListByArticleID(art.ID)
	if err != nil {
		return nil, infraError(err)
	}

	return s.renderMany(viewerID, comments)
}

// ===== 内部辅助 =====

func (s *CommentService) findUser(userID string) (string, *response.BusinessError) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage(fmt.Sprintf("No user with an id of '%s' has been found.", userID)),
			)
		}
		return "", infraError(err)
	}
	return u.ID, nil
}

func (s *CommentService) findArticle(slug string) (*articleModel.Article, *response.BusinessError) {
	art, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage(fmt.Sprintf("No article with slug '%s' was found.", slug)),
			)
		}
		return nil, infraError(err)
	}
	return art, nil
}

// renderMany 批量渲染评论视图
// 需要的关联：评论作者（users 批查）与 viewer 的关注集合
func (s *CommentService) renderMany(viewerID string, comments []articleModel.Comment) ([]dto.CommentModel, *response.BusinessError) {
	if len(comments) == 0 {
		return []dto.CommentModel{}, nil
	}

	authorIDs := make([]string, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}

	authors, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, infraError(err)
	}
	followingSet, err := s.userRepo.FollowingSet(viewerID)
	if err != nil {
		return nil, infraError(err)
	}

	models := make([]dto.CommentModel, 0, len(comments))
	for _, comment := range comments {
		author := authors[comment.AuthorID]
		models = append(models, dto.CommentModel{
			ID:        comment.ID,
			Body:      comment.Body,
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
			Author: dto.ProfileModel{
				ID:        author.ID,
				Username:  author.Username,
				Bio:       author.Bio,
				Image:     author.Image,
				Following: followingSet[comment.AuthorID],
			},
		})
	}
	return models, nil
}

func infraError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Internal),
		response.WithErrorMessage("internal error"),
		response.WithError(err),
	)
}
