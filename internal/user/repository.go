package user

import (
	"gorm.io/gorm"

	userModel "terminal-terrace/conduit/internal/model/user"
)

// UserRepository 用户数据访问层
// 所有服务的用户查找都经由这里，不在各服务内部重复实现
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByIDs 批量获取用户，返回 id -> User 映射
func (r *UserRepository) GetByIDs(ids []string) (map[string]userModel.User, error) {
	result := make(map[string]userModel.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []userModel.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}

func (r *UserRepository) Create(u *userModel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Update(u *userModel.User) error {
	return r.db.Save(u).Error
}

// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
// excludeID 非空时排除该用户自身的记录，用于更新场景
func (r *UserRepository) ExistsByUsernameOrEmail(username, email, excludeID string) (usernameTaken, emailTaken bool, err error) {
	query := r.db.Where("username = ? OR email = ?", username, email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var users []userModel.User
	err = query.Find(&users).Error
	if err != nil {
		return false, false, err
	}
	for _, u := range users {
		if u.Username == username {
			usernameTaken = true
		}
		if u.Email == email {
			emailTaken = true
		}
	}
	return usernameTaken, emailTaken, nil
}

// ===== 关注关系操作 =====

// IsFollowing follower 是否正在关注 following
func (r *UserRepository) IsFollowing(followerID, followingID string) (bool, error) {
	if followerID == "" {
		return false, nil
	}
	var count int64
	err := r.db.Model(&userModel.FollowedUser{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// FollowingIDs 获取用户关注的所有用户ID
func (r *UserRepository) FollowingIDs(followerID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&userModel.FollowedUser{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// FollowingSet 获取用户关注集合，用于批量渲染视图模型
func (r *UserRepository) FollowingSet(followerID string) (map[string]bool, error) {
	set := make(map[string]bool)
	if followerID == "" {
		return set, nil
	}
	ids, err := r.FollowingIDs(followerID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// AddFollow 插入关注边，复合主键约束兜底并发下的重复关注
func (r *UserRepository) AddFollow(followerID, followingID string) error {
	return r.db.Create(&userModel.FollowedUser{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
}

// RemoveFollow 删除关注边
func (r *UserRepository) RemoveFollow(followerID, followingID string) error {
	return r.db.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&userModel.FollowedUser{}).Error
}
