package user

import "time"

// User 用户模型
type User struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Bio          string    `gorm:"type:text" json:"bio"`
	Image        string    `gorm:"type:varchar(512)" json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FollowedUser 关注关系表（follower 关注 following）
// 复合主键保证同一对用户只有一条关注记录，并发重复关注由主键约束兜底
type FollowedUser struct {
	FollowerID  string    `gorm:"type:varchar(36);primaryKey" json:"follower_id"`
	FollowingID string    `gorm:"type:varchar(36);primaryKey;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
