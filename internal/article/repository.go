package article

import (
	"strings"

	"gorm.io/gorm"

	articleModel "terminal-terrace/conduit/internal/model/article"
)

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ArticleFilter 列表过滤条件，零值字段不参与过滤
type ArticleFilter struct {
	Tag         string
	Author      string
	FavoritedBy string
}

// ===== Article 基础操作 =====

// GetBySlug 根据 slug 查找文章，不区分大小写
func (r *ArticleRepository) GetBySlug(slug string) (*articleModel.Article, error) {
	var art articleModel.Article
	err := r.db.Where("LOWER(slug) = LOWER(?)", slug).
		Order("created_at DESC").
		First(&art).Error
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// Create 创建文章及其标签关联，单事务写入
func (r *ArticleRepository) Create(art *articleModel.Article, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(art).Error; err != nil {
			return err
		}
		return replaceArticleTags(tx, art.ID, tagIDs)
	})
}

// Update 更新文章，tagIDs 为 nil 时保留原有标签关联
func (r *ArticleRepository) Update(art *articleModel.Article, tagIDs *[]uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(art).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		if err := tx.Where("article_id = ?", art.ID).
			Delete(&articleModel.ArticleTag{}).Error; err != nil {
			return err
		}
		return replaceArticleTags(tx, art.ID, *tagIDs)
	})
}

func replaceArticleTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	for _, tagID := range tagIDs {
		if err := tx.Create(&articleModel.ArticleTag{
			ArticleID: articleID,
			TagID:     tagID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete 删除文章，评论、收藏边和标签关联随之级联删除
func (r *ArticleRepository) Delete(articleID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).
			Delete(&articleModel.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).
			Delete(&articleModel.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).
			Delete(&articleModel.ArticleTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&articleModel.Article{}, articleID).Error
	})
}

// List 按条件查询文章，createdAt 降序分页
// 需要的关联：标签过滤走 article_tags+tags 子查询，作者过滤走 users 子查询，
// 收藏人过滤走 favorites+users 子查询
func (r *ArticleRepository) List(f ArticleFilter, limit, offset int) ([]articleModel.Article, error) {
	query := r.db.Model(&articleModel.Article{})

	if f.Tag != "" {
		query = query.Where("id IN (?)", r.db.
			Table("article_tags").
			Select("article_tags.article_id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name = ?", strings.ToLower(f.Tag)))
	}
	if f.Author != "" {
		query = query.Where("author_id IN (?)", r.db.
			Table("users").
			Select("users.id").
			Where("users.username = ?", f.Author))
	}
	if f.FavoritedBy != "" {
		query = query.Where("id IN (?)", r.db.
			Table("favorites").
			Select("favorites.article_id").
			Joins("JOIN users ON users.id = favorites.user_id").
			Where("users.username = ?", f.FavoritedBy))
	}

	var articles []articleModel.Article
	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ListByAuthors 查询指定作者集合的文章，createdAt 降序分页
func (r *ArticleRepository) ListByAuthors(authorIDs []string, limit, offset int) ([]articleModel.Article, error) {
	if len(authorIDs) == 0 {
		return []articleModel.Article{}, nil
	}

	var articles []articleModel.Article
	err := r.db.Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// ===== 标签读取 =====

// TagNamesByArticleIDs 批量获取文章标签名，返回 articleID -> 标签名列表
func (r *ArticleRepository) TagNamesByArticleIDs(articleIDs []uint) (map[uint][]string, error) {
	result := make(map[uint][]string, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ArticleID uint
		Name      string
	}
	err := r.db.Table("article_tags").
		Select("article_tags.article_id, tags.name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id IN ?", articleIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ArticleID] = append(result[row.ArticleID], row.Name)
	}
	return result, nil
}

// ===== 收藏边操作 =====

// IsFavorited 用户是否已收藏文章
func (r *ArticleRepository) IsFavorited(articleID uint, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	var count int64
	err := r.db.Model(&articleModel.Favorite{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

// FavoritedSet 批量获取用户收藏的文章集合
func (r *ArticleRepository) FavoritedSet(userID string, articleIDs []uint) (map[uint]bool, error) {
	set := make(map[uint]bool)
	if userID == "" || len(articleIDs) == 0 {
		return set, nil
	}

	var ids []uint
	err := r.db.Model(&articleModel.Favorite{}).
		Where("user_id = ? AND article_id IN ?", userID, articleIDs).
		Pluck("article_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// FavoriteCountsByArticleIDs 批量统计收藏数，返回 articleID -> 收藏数
func (r *ArticleRepository) FavoriteCountsByArticleIDs(articleIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ArticleID uint
		Count     int64
	}
	err := r.db.Model(&articleModel.Favorite{}).
		Select("article_id, COUNT(*) as count").
		Where("article_id IN ?", articleIDs).
		Group("article_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ArticleID] = row.Count
	}
	return result, nil
}

// AddFavorite 插入收藏边，复合主键约束兜底并发下的重复收藏
func (r *ArticleRepository) AddFavorite(articleID uint, userID string) error {
	return r.db.Create(&articleModel.Favorite{
		ArticleID: articleID,
		UserID:    userID,
	}).Error
}

// RemoveFavorite 删除收藏边
func (r *ArticleRepository) RemoveFavorite(articleID uint, userID string) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&articleModel.Favorite{}).Error
}
