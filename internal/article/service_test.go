package article

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/conduit/internal/dto"
	articleModel "terminal-terrace/conduit/internal/model/article"
	userModel "terminal-terrace/conduit/internal/model/user"
	"terminal-terrace/conduit/internal/testutils"
	"terminal-terrace/conduit/internal/user"
	"terminal-terrace/conduit/response"
)

func setupArticleService(t *testing.T) (*ArticleService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	service := NewArticleService(
		NewArticleRepository(db),
		NewTagRepository(db),
		user.NewUserRepository(db),
	)
	return service, db
}

func follow(t *testing.T, db *gorm.DB, followerID, followingID string) {
	t.Helper()
	require.NoError(t, db.Create(&userModel.FollowedUser{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error)
}

func TestArticleService_Create_DerivesSlug(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	art, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "My First Post",
		Description: "about firsts",
		Body:        "hello world",
		TagList:     []string{"Intro", "intro", "Go"},
	})
	require.Nil(t, bizErr)

	assert.Equal(t, "my-first-post", art.Slug)
	assert.Equal(t, "My First Post", art.Title)
	assert.Equal(t, author.Username, art.Author.Username)
	assert.False(t, art.Favorited)
	assert.Equal(t, 0, art.FavoritesCount)
	// Tag names are lowercased and deduplicated
	assert.ElementsMatch(t, []string{"intro", "go"}, art.TagList)
}

func TestArticleService_Create_UnknownAuthor(t *testing.T) {
	service, _ := setupArticleService(t)

	_, bizErr := service.Create("no-such-user", dto.CreateArticleModel{
		Title:       "Title",
		Description: "desc",
		Body:        "body",
	})
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestArticleService_Create_BlankFields(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	_, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "  ",
		Description: "desc",
		Body:        "",
	})
	require.NotNil(t, bizErr)
	assert.Equal(t, response.ParseError, bizErr.Code)
}

func TestArticleService_GetBySlug_CaseInsensitive(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "My First Post",
		Description: "desc",
		Body:        "body",
	})
	require.Nil(t, bizErr)

	found, bizErr := service.GetBySlug("", "My-First-Post")
	require.Nil(t, bizErr)
	assert.Equal(t, created.ID, found.ID)
	assert.False(t, found.Favorited)
	assert.False(t, found.Author.Following)

	_, bizErr = service.GetBySlug("", "does-not-exist")
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestArticleService_Update_SparsePatch(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "Original Title",
		Description: "original description",
		Body:        "original body",
		TagList:     []string{"keep"},
	})
	require.Nil(t, bizErr)

	// Only the body is provided: title, description, slug and tags stay put
	newBody := "updated body"
	updated, bizErr := service.Update(author.ID, created.Slug, dto.UpdateArticleModel{
		Body: &newBody,
	})
	require.Nil(t, bizErr)

	assert.Equal(t, "Original Title", updated.Title)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, "updated body", updated.Body)
	assert.Equal(t, "original-title", updated.Slug)
	assert.ElementsMatch(t, []string{"keep"}, updated.TagList)
}

func TestArticleService_Update_RecomputesSlugAndTags(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	created, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "Original Title",
		Description: "desc",
		Body:        "body",
		TagList:     []string{"old"},
	})
	require.Nil(t, bizErr)

	newTitle := "Brand New Title"
	newTags := []string{"Fresh", "fresh", "shiny"}
	updated, bizErr := service.Update(author.ID, created.Slug, dto.UpdateArticleModel{
		Title:   &newTitle,
		TagList: &newTags,
	})
	require.Nil(t, bizErr)

	assert.Equal(t, "brand-new-title", updated.Slug)
	assert.ElementsMatch(t, []string{"fresh", "shiny"}, updated.TagList)

	// The old slug no longer resolves
	_, bizErr = service.GetBySlug("", "original-title")
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestArticleService_Update_NotAuthor(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)

	created, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "Protected Post",
		Description: "desc",
		Body:        "body",
	})
	require.Nil(t, bizErr)

	newTitle := "Hijacked"
	_, bizErr = service.Update(intruder.ID, created.Slug, dto.UpdateArticleModel{
		Title: &newTitle,
	})
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Forbidden, bizErr.Code)

	// The article is unchanged
	unchanged, lookupErr := service.GetBySlug("", created.Slug)
	require.Nil(t, lookupErr)
	assert.Equal(t, "Protected Post", unchanged.Title)
}

func TestArticleService_Delete(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)

	created, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "Doomed Post",
		Description: "desc",
		Body:        "body",
	})
	require.Nil(t, bizErr)

	// Attach a comment and a favorite edge to verify the cascade
	require.NoError(t, db.Create(&articleModel.Comment{
		Body:      "so long",
		AuthorID:  intruder.ID,
		ArticleID: created.ID,
		CreatedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&articleModel.Favorite{
		ArticleID: created.ID,
		UserID:    intruder.ID,
	}).Error)

	// Non-author cannot delete
	_, bizErr = service.Delete(intruder.ID, created.Slug)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Forbidden, bizErr.Code)

	deletedID, bizErr := service.Delete(author.ID, created.Slug)
	require.Nil(t, bizErr)
	assert.Equal(t, created.ID, deletedID)

	var commentCount, favoriteCount int64
	require.NoError(t, db.Model(&articleModel.Comment{}).Where("article_id = ?", created.ID).Count(&commentCount).Error)
	require.NoError(t, db.Model(&articleModel.Favorite{}).Where("article_id = ?", created.ID).Count(&favoriteCount).Error)
	assert.EqualValues(t, 0, commentCount)
	assert.EqualValues(t, 0, favoriteCount)

	_, bizErr = service.GetBySlug("", created.Slug)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestArticleService_FavoriteAndUnfavorite(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)
	reader := testutils.CreateTestUser(db)

	created, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "Popular Post",
		Description: "desc",
		Body:        "body",
	})
	require.Nil(t, bizErr)

	favorited, bizErr := service.Favorite(reader.ID, created.Slug)
	require.Nil(t, bizErr)
	assert.True(t, favorited.Favorited)
	assert.Equal(t, 1, favorited.FavoritesCount)

	// Favoriting twice is a conflict and never creates a duplicate edge
	_, bizErr = service.Favorite(reader.ID, created.Slug)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Conflict, bizErr.Code)

	var edgeCount int64
	require.NoError(t, db.Model(&articleModel.Favorite{}).
		Where("article_id = ? AND user_id = ?", created.ID, reader.ID).
		Count(&edgeCount).Error)
	assert.EqualValues(t, 1, edgeCount)

	unfavorited, bizErr := service.Unfavorite(reader.ID, created.Slug)
	require.Nil(t, bizErr)
	assert.False(t, unfavorited.Favorited)
	assert.Equal(t, 0, unfavorited.FavoritesCount)

	// Unfavoriting an article that is not favorited is a conflict
	_, bizErr = service.Unfavorite(reader.ID, created.Slug)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.Conflict, bizErr.Code)
}

func TestArticleService_Feed(t *testing.T) {
	service, db := setupArticleService(t)
	followed := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	viewer := testutils.CreateTestUser(db)

	base := time.Now().Add(-time.Hour)
	older := testutils.CreateTestArticle(db, followed.ID, testutils.WithCreatedAt(base))
	newer := testutils.CreateTestArticle(db, followed.ID, testutils.WithCreatedAt(base.Add(time.Minute)))
	testutils.CreateTestArticle(db, other.ID, testutils.WithCreatedAt(base.Add(2*time.Minute)))

	follow(t, db, viewer.ID, followed.ID)

	feed, bizErr := service.Feed(viewer.ID, 20, 0)
	require.Nil(t, bizErr)

	// Only the followed author's articles, newest first
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, older.ID, feed[1].ID)
	assert.True(t, feed[0].Author.Following)
}

func TestArticleService_Feed_EmptyWithoutFollows(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)
	viewer := testutils.CreateTestUser(db)
	testutils.CreateTestArticle(db, author.ID)

	feed, bizErr := service.Feed(viewer.ID, 20, 0)
	require.Nil(t, bizErr)
	assert.Empty(t, feed)
}

func TestArticleService_Feed_UnknownViewer(t *testing.T) {
	service, _ := setupArticleService(t)

	_, bizErr := service.Feed("no-such-user", 20, 0)
	require.NotNil(t, bizErr)
	assert.Equal(t, response.NotFound, bizErr.Code)
}

func TestArticleService_List_Filters(t *testing.T) {
	service, db := setupArticleService(t)
	alice := testutils.CreateTestUser(db, testutils.WithUsername("alice"))
	bob := testutils.CreateTestUser(db, testutils.WithUsername("bob"))

	tagged, bizErr := service.Create(alice.ID, dto.CreateArticleModel{
		Title:       "Tagged Post",
		Description: "desc",
		Body:        "body",
		TagList:     []string{"golang"},
	})
	require.Nil(t, bizErr)
	_, bizErr = service.Create(bob.ID, dto.CreateArticleModel{
		Title:       "Untagged Post",
		Description: "desc",
		Body:        "body",
	})
	require.Nil(t, bizErr)

	_, bizErr = service.Favorite(bob.ID, tagged.Slug)
	require.Nil(t, bizErr)

	// Tag filter is case-insensitive because names are stored lowercased
	byTag, bizErr := service.List("", dto.ListArticlesQuery{Tag: "Golang"})
	require.Nil(t, bizErr)
	require.Len(t, byTag, 1)
	assert.Equal(t, tagged.ID, byTag[0].ID)

	byAuthor, bizErr := service.List("", dto.ListArticlesQuery{Author: "alice"})
	require.Nil(t, bizErr)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, tagged.ID, byAuthor[0].ID)

	byFavorited, bizErr := service.List("", dto.ListArticlesQuery{Favorited: "bob"})
	require.Nil(t, bizErr)
	require.Len(t, byFavorited, 1)
	assert.Equal(t, tagged.ID, byFavorited[0].ID)

	// Filters are conjunctive
	both, bizErr := service.List("", dto.ListArticlesQuery{Author: "bob", Tag: "golang"})
	require.Nil(t, bizErr)
	assert.Empty(t, both)

	// No matches is an empty list, never an error
	none, bizErr := service.List("", dto.ListArticlesQuery{Tag: "missing"})
	require.Nil(t, bizErr)
	assert.Empty(t, none)
}

func TestArticleService_List_Pagination(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	base := time.Now().Add(-time.Hour)
	var ids []uint
	for i := 0; i < 5; i++ {
		art := testutils.CreateTestArticle(db, author.ID,
			testutils.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		ids = append(ids, art.ID)
	}

	page, bizErr := service.List("", dto.ListArticlesQuery{Limit: 2, Offset: 1})
	require.Nil(t, bizErr)
	require.Len(t, page, 2)
	// createdAt descending: offset 1 skips the newest
	assert.Equal(t, ids[3], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)
}

func TestTagRepository_CaseFolding(t *testing.T) {
	service, db := setupArticleService(t)
	author := testutils.CreateTestUser(db)

	_, bizErr := service.Create(author.ID, dto.CreateArticleModel{
		Title:       "First",
		Description: "desc",
		Body:        "body",
		TagList:     []string{"Go"},
	})
	require.Nil(t, bizErr)
	_, bizErr = service.Create(author.ID, dto.CreateArticleModel{
		Title:       "Second",
		Description: "desc",
		Body:        "body",
		TagList:     []string{"go"},
	})
	require.Nil(t, bizErr)

	var tags []articleModel.Tag
	require.NoError(t, db.Find(&tags).Error)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Name)

	names, bizErr := service.ListTags()
	require.Nil(t, bizErr)
	assert.Equal(t, []string{"go"}, names)
}
