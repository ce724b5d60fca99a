package comment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/article"
	articleModel "terminal-terrace/conduit/internal/model/article"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/testutils"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/response"
)

func setupCommentService(t *testing.T) (*CommentService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	service := NewCommentService(
		NewCommentRepository(db),
		article.NewArticleRepository(db),
		user.NewUserRepository(db),
	)
	return service, db
}

func TestCommentService_Create(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)
	commenter := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	comment, bizErr := service.Create(commenter.ID, art.Slug, "Nice read!")
	require.Nil(t, bizErr)
	assert.Equal(t, "Nice read!", comment.Body)
	assert.Equal(t, commenter.Username, comment.Author.Username)
	assert.False(t, comment.Author.Following)
	assert.NotZero(t, comment.ID)
}

func TestCommentService_Create_BlankBody(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	_, bizErr := service.Create(author.ID, art.Slug, "   ")
	require.NotNil(t, bizErr)
	assert.Equal(t, response.ParseError, bizErr.Code)
}

func TestCommentService_Create_UnknownArticle(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)

	_, bizErr := service.Create(author.ID, "no-such-slug", "hello")
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestCommentService_ListForArticle(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)
	commenter := testutils.CreateTestUser(db)
	viewer := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&articleModel.Comment{
		Body:      "first",
		AuthorID:  commenter.ID,
		ArticleID: art.ID,
		CreatedAt: base,
	}).Error)
	require.NoError(t, db.Create(&articleModel.Comment{
		Body:      "second",
		AuthorID:  commenter.ID,
		ArticleID: art.ID,
		CreatedAt: base.Add(time.Minute),
	}).Error)

	require.NoError(t, db.Create(&userModel.FollowedUser{
		FollowerID:  viewer.ID,
		FollowingID: commenter.ID,
	}).Error)

	comments, bizErr := service.ListForArticle(viewer.ID, art.Slug)
	require.Nil(t, bizErr)
	require.Len(t, comments, 2)
	// Newest first
	assert.Equal(t, "second", comments[0].Body)
	assert.Equal(t, "first", comments[1].Body)
	assert.True(t, comments[0].Author.Following)

	// Anonymous viewer sees following=false
	anon, bizErr := service.ListForArticle("", art.Slug)
	require.Nil(t, bizErr)
	assert.False(t, anon[0].Author.Following)
}

func TestCommentService_ListForArticle_Empty(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	comments, bizErr := service.ListForArticle("", art.Slug)
	require.Nil(t, bizErr)
	assert.Empty(t, comments)
}

func TestCommentService_Delete(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)
	commenter := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	comment, bizErr := service.Create(commenter.ID, art.Slug, "delete me")
	require.Nil(t, bizErr)

	// Only the comment's author may delete it
	_, bizErr = service.Delete(author.ID, art.Slug, comment.ID)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Forbidden, bizErr.Code)

	deletedID, bizErr := service.Delete(commenter.ID, art.Slug, comment.ID)
	require.Nil(t, bizErr)
	assert.Equal(t, comment.ID, deletedID)

	var count int64
	require.NoError(t, db.Model(&articleModel.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCommentService_Delete_UnknownComment(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)
	art := testutils.CreateTestArticle(db, author.ID)

	_, bizErr := service.Delete(author.ID, art.Slug, 999)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestCommentService_Delete_UnknownArticle(t *testing.T) {
	service, db := setupCommentService(t)
	author := testutils.CreateTestUser(db)

	_, bizErr := service.Delete(author.ID, "no-such-slug", 1)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}
