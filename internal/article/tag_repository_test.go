package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articleModel "terminal-terrace/conduit/internal/model/article"
	"terminal-terrace/conduit/internal/testutils"
)

func TestTagRepository_ResolveNames(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTagRepository(db)

	ids, err := repo.ResolveNames([]string{" Go ", "go", "Web", ""})
	require.NoError(t, err)
	require.Len(t, ids, 2)

	// Resolving again reuses the same rows
	again, err := repo.ResolveNames([]string{"GO", "web"})
	require.NoError(t, err)
	assert.Equal(t, ids, again)

	var count int64
	require.NoError(t, db.Model(&articleModel.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestTagRepository_CreateTag_LostRace(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTagRepository(db)

	// Another writer got the row in first
	winner := articleModel.Tag{Name: "go"}
	require.NoError(t, db.Create(&winner).Error)

	// The unique-index failure resolves to the existing row instead of an error
	id, err := repo.createTag("go")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, id)

	var count int64
	require.NoError(t, db.Model(&articleModel.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
