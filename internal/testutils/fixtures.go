package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	articleModel "terminal-terrace/conduit/internal/model/article"
	userModel "terminal-terrace/conduit/internal/model/user"
)

// CreateTestUser creates a test user with unique username/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *userModel.User {
	uniqueID := uuid.New().String()

	testUser := &userModel.User{
		ID:           uniqueID,
		Username:     fmt.Sprintf("test_user_%s", uniqueID[:8]),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID[:8]),
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*userModel.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *userModel.User) {
		u.Username = username
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *userModel.User) {
		u.Email = email
	}
}

// WithPasswordHash sets the bcrypt hash
func WithPasswordHash(hash string) UserOption {
	return func(u *userModel.User) {
		u.PasswordHash = hash
	}
}

// CreateTestArticle creates a test article for the given author
func CreateTestArticle(db *gorm.DB, authorID string, opts ...ArticleOption) *articleModel.Article {
	uniqueID := uuid.New().String()[:8]
	title := fmt.Sprintf("Test Article %s", uniqueID)

	testArticle := &articleModel.Article{
		Slug:        fmt.Sprintf("test-article-%s", uniqueID),
		Title:       title,
		Description: "Test article description",
		Body:        "Test article body",
		AuthorID:    authorID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*articleModel.Article)

// WithTitle sets the article title and its derived slug
func WithTitle(title string) ArticleOption {
	return func(a *articleModel.Article) {
		a.Title = title
	}
}

// WithSlug sets the article slug
func WithSlug(slug string) ArticleOption {
	return func(a *articleModel.Article) {
		a.Slug = slug
	}
}

// WithCreatedAt sets the creation timestamp, useful for ordering assertions
func WithCreatedAt(createdAt time.Time) ArticleOption {
	return func(a *articleModel.Article) {
		a.CreatedAt = createdAt
	}
}
