package article

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	articleModel "terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/response"
)

// ArticleService 文章服务，负责文章生命周期、收藏与标签
// viewerID 为空串表示匿名访问，视图模型中的 Favorited/Following 恒为 false
type ArticleService struct {
	articleRepo *ArticleRepository
	tagRepo     *TagRepository
	userRepo    *user.UserRepository
}

func NewArticleService(
	articleRepo *ArticleRepository,
	tagRepo *TagRepository,
	userRepo *user.UserRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
	}
}

// Create 创建文章
func (s *ArticleService) Create(authorID string, m dto.CreateArticleModel) (dto.ArticleModel, *response.BusinessError) {
	// 1. 作者必须存在
	if _, bizErr := s.findUser(authorID); bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	// 2. 必填字段不能为空白
	if bizErr := validateArticleFields(m.Title, m.Description, m.Body); bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	// 3. 解析标签（复用已有标签行，大小写不敏感）
	tagIDs, err := s.tagRepo.ResolveNames(m.TagList)
	if err != nil {
		return dto.ArticleModel{}, infraError(err)
	}

	// 4. 写入文章
	now := time.Now()
	art := &articleModel.Article{
		Slug:        MakeSlug(m.Title),
		Title:       m.Title,
		Description: m.Description,
		Body:        m.Body,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.articleRepo.Create(art, tagIDs); err != nil {
		return dto.ArticleModel{}, infraError(err)
	}

	return s.renderOne(authorID, art)
}

// Update 稀疏更新文章，省略的字段保持不变；仅作者可更新
func (s *ArticleService) Update(updatingUserID, slug string, m dto.UpdateArticleModel) (dto.ArticleModel, *response.BusinessError) {
	if _, bizErr := s.findUser(updatingUserID); bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	if art.AuthorID != updatingUserID {
		return dto.ArticleModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("You must be the author in order to update an article."),
		)
	}

	// 应用非空字段并重算 slug
	if m.Title != nil {
		art.Title = *m.Title
	}
	if m.Description != nil {
		art.Description = *m.Description
	}
	if m.Body != nil {
		art.Body = *m.Body
	}
	if bizErr := validateArticleFields(art.Title, art.Description, art.Body); bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}
	art.Slug = MakeSlug(art.Title)
	art.UpdatedAt = time.Now()

	// 标签与创建时同样方式解析；tagList 省略时保留原有关联
	var tagIDs *[]uint
	if m.TagList != nil {
		ids, err := s.tagRepo.ResolveNames(*m.TagList)
		if err != nil {
			return dto.ArticleModel{}, infraError(err)
		}
		tagIDs = &ids
	}

	if err := s.articleRepo.Update(art, tagIDs); err != nil {
		return dto.ArticleModel{}, infraError(err)
	}

	return s.renderOne(updatingUserID, art)
}

// Delete 删除文章，评论和收藏边级联删除；仅作者可删除
func (s *ArticleService) Delete(deletingUserID, slug string) (uint, *response.BusinessError) {
	if _, bizErr := s.findUser(deletingUserID); bizErr != nil {
		return 0, bizErr
	}

	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return 0, bizErr
	}

	if art.AuthorID != deletingUserID {
		return 0, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("You must be the author in order to delete an article."),
		)
	}

	if err := s.articleRepo.Delete(art.ID); err != nil {
		return 0, infraError(err)
	}
	return art.ID, nil
}

// GetBySlug 按 slug 查询，视图相对 viewer 渲染
func (s *ArticleService) GetBySlug(viewerID, slug string) (dto.ArticleModel, *response.BusinessError) {
	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}
	return s.renderOne(viewerID, art)
}

// List 按过滤条件查询文章列表，没有匹配时返回空列表而不是错误
func (s *ArticleService) List(viewerID string, q dto.ListArticlesQuery) ([]dto.ArticleModel, *response.BusinessError) {
	limit, offset := normalizePaging(q.Limit, q.Offset)

	articles, err := s.articleRepo.List(ArticleFilter{
		Tag:         q.Tag,
		Author:      q.Author,
		FavoritedBy: q.Favorited,
	}, limit, offset)
	if err != nil {
		return nil, infraError(err)
	}

	return s.renderMany(viewerID, articles)
}

// Feed 查询 viewer 关注作者的文章；未知 viewer 是错误，与匿名列表不同
func (s *ArticleService) Feed(viewerID string, limit, offset int) ([]dto.ArticleModel, *response.BusinessError) {
	if _, bizErr := s.findUser(viewerID); bizErr != nil {
		return nil, bizErr
	}

	followedIDs, err := s.userRepo.FollowingIDs(viewerID)
	if err != nil {
		return nil, infraError(err)
	}

	limit, offset = normalizePaging(limit, offset)
	articles, err := s.articleRepo.ListByAuthors(followedIDs, limit, offset)
	if err != nil {
		return nil, infraError(err)
	}

	return s.renderMany(viewerID, articles)
}

// Favorite 收藏文章，重复收藏是错误
func (s *ArticleService) Favorite(userID, slug string) (dto.ArticleModel, *response.BusinessError) {
	if _, bizErr := s.findUser(userID); bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	favorited, err := s.articleRepo.IsFavorited(art.ID, userID)
	if err != nil {
		return dto.ArticleModel{}, infraError(err)
	}
	if favorited {
		return dto.ArticleModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("You have already favorited this article."),
		)
	}

	if err := s.articleRepo.AddFavorite(art.ID, userID); err != nil {
		return dto.ArticleModel{}, infraError(err)
	}

	return s.renderOne(userID, art)
}

// Unfavorite 取消收藏，未收藏时取消是错误
func (s *ArticleService) Unfavorite(userID, slug string) (dto.ArticleModel, *response.BusinessError) {
	if _, bizErr := s.findUser(userID); bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	art, bizErr := s.findArticle(slug)
	if bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}

	favorited, err := s.articleRepo.IsFavorited(art.ID, userID)
	if err != nil {
		return dto.ArticleModel{}, infraError(err)
	}
	if !favorited {
		return dto.ArticleModel{}, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("You have not favorited this article."),
		)
	}

	if err := s.articleRepo.RemoveFavorite(art.ID, userID); err != nil {
		return dto.ArticleModel{}, infraError(err)
	}

	return s.renderOne(userID, art)
}

// ListTags 返回全部标签名
func (s *ArticleService) ListTags() ([]string, *response.BusinessError) {
	names, err := s.tagRepo.ListNames()
	if err != nil {
		return nil, infraError(err)
	}
	return names, nil
}

// ===== 内部辅助 =====

func (s *ArticleService) findUser(userID string) (string, *response.BusinessError) {
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

func (s *ArticleService) findArticle(slug string) (*articleModel.Article, *response.BusinessError) {
	if strings.TrimSpace(slug) == "" {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("The slug must not be empty."),
		)
	}

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

// renderOne 渲染单篇文章视图
func (s *ArticleService) renderOne(viewerID string, art *articleModel.Article) (dto.ArticleModel, *response.BusinessError) {
	models, bizErr := s.renderMany(viewerID, []articleModel.Article{*art})
	if bizErr != nil {
		return dto.ArticleModel{}, bizErr
	}
	return models[0], nil
}

// renderMany 批量渲染文章视图
// 需要的关联：作者（users 批查）、标签名（article_tags+tags 批查）、
// 收藏数（favorites 分组计数）、viewer 的收藏集合与关注集合
func (s *ArticleService) renderMany(viewerID string, articles []articleModel.Article) ([]dto.ArticleModel, *response.BusinessError) {
	if len(articles) == 0 {
		return []dto.ArticleModel{}, nil
	}

	articleIDs := make([]uint, 0, len(articles))
	authorIDs := make([]string, 0, len(articles))
	for _, art := range articles {
		articleIDs = append(articleIDs, art.ID)
		authorIDs = append(authorIDs, art.AuthorID)
	}

	authors, err := s.userRepo.GetByIDs(authorIDs)
	if err != nil {
		return nil, infraError(err)
	}
	tagNames, err := s.articleRepo.TagNamesByArticleIDs(articleIDs)
	if err != nil {
		return nil, infraError(err)
	}
	favCounts, err := s.articleRepo.FavoriteCountsByArticleIDs(articleIDs)
	if err != nil {
		return nil, infraError(err)
	}
	favoritedSet, err := s.articleRepo.FavoritedSet(viewerID, articleIDs)
	if err != nil {
		return nil, infraError(err)
	}
	followingSet, err := s.userRepo.FollowingSet(viewerID)
	if err != nil {
		return nil, infraError(err)
	}

	models := make([]dto.ArticleModel, 0, len(articles))
	for _, art := range articles {
		author := authors[art.AuthorID]
		tags := tagNames[art.ID]
		if tags == nil {
			tags = []string{}
		}

		models = append(models, dto.ArticleModel{
			ID:             art.ID,
			Slug:           art.Slug,
			Title:          art.Title,
			Description:    art.Description,
			Body:           art.Body,
			TagList:        tags,
			CreatedAt:      art.CreatedAt,
			UpdatedAt:      art.UpdatedAt,
			Favorited:      favoritedSet[art.ID],
			FavoritesCount: int(favCounts[art.ID]),
			Author: dto.ProfileModel{
				ID:        author.ID,
				Username:  author.Username,
				Bio:       author.Bio,
				Image:     author.Image,
				Following: followingSet[art.AuthorID],
			},
		})
	}
	return models, nil
}

func validateArticleFields(title, description, body string) *response.BusinessError {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(body) == "" {
		missing = append(missing, "body")
	}
	if len(missing) == 0 {
		return nil
	}
	return response.NewBusinessError(
		response.WithErrorCode(response.ParseError),
		response.WithErrorMessage(fmt.Sprintf("The following fields must not be blank: %s.", strings.Join(missing, ", "))),
	)
}

func normalizePaging(limit, offset int) (int, int) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func infraError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Internal),
		response.WithErrorMessage("internal error"),
		response.WithError(err),
	)
}
