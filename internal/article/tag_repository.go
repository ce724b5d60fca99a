package article

import (
	"strings"

	"gorm.io/gorm"

	articleModel "terminal-terrace/conduit/internal/model/article"
)

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ResolveNames 将标签名解析为标签ID列表
// 名称先统一转小写再去重，已存在的标签直接复用，只为未出现过的名称建新行
func (r *TagRepository) ResolveNames(names []string) ([]uint, error) {
	normalized := normalizeTagNames(names)
	if len(normalized) == 0 {
		return []uint{}, nil
	}

	var existing []articleModel.Tag
	if err := r.db.Where("name IN ?", normalized).Find(&existing).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]uint, len(existing))
	for _, tag := range existing {
		byName[tag.Name] = tag.ID
	}

	ids := make([]uint, 0, len(normalized))
	for _, name := range normalized {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
			continue
		}

		id, err := r.createTag(name)
		if err != nil {
			return nil, err
		}
		byName[name] = id
		ids = append(ids, id)
	}
	return ids, nil
}

// createTag 创建标签并返回其ID
// 并发创建同名标签时唯一索引只允许一次写入成功，失败方改读已有行
func (r *TagRepository) createTag(name string) (uint, error) {
	tag := articleModel.Tag{Name: name}
	if err := r.db.Create(&tag).Error; err != nil {
		var existing articleModel.Tag
		if lookupErr := r.db.Where("name = ?", name).First(&existing).Error; lookupErr == nil {
			return existing.ID, nil
		}
		return 0, err
	}
	return tag.ID, nil
}

// ListNames 返回全部标签名
func (r *TagRepository) ListNames() ([]string, error) {
	var names []string
	err := r.db.Model(&articleModel.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// normalizeTagNames 转小写、去空白、保序去重
func normalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
