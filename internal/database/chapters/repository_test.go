package chapters

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freewrite-app/freewrite/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_chapters_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Book{}, &entities.Chapter{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func addChapter(t *testing.T, repo *Repository, bookID uint, number int, title string) *entities.Chapter {
	t.Helper()
	chapter, err := repo.CreateChapter(&entities.Chapter{
		BookID:  bookID,
		Title:   title,
		Content: "content of " + title,
		Number:  number,
	})
	require.NoError(t, err)
	return chapter
}

func TestRepository_GetChaptersForBook_OrderedByNumber(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Insert out of order; listing must sort by number anyway
	addChapter(t, repo, 1, 3, "three")
	addChapter(t, repo, 1, 1, "one")
	addChapter(t, repo, 1, 2, "two")
	addChapter(t, repo, 2, 0, "other book")

	chapters, err := repo.GetChaptersForBook(1)

	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, "one", chapters[0].Title)
	assert.Equal(t, "two", chapters[1].Title)
	assert.Equal(t, "three", chapters[2].Title)
}

func TestRepository_GetChapterByNumber(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := addChapter(t, repo, 1, 2, "two")

	chapter, err := repo.GetChapterByNumber(1, 2)

	require.NoError(t, err)
	require.NotNil(t, chapter)
	assert.Equal(t, created.ID, chapter.ID)
}

func TestRepository_GetChapterByNumber_Absent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	addChapter(t, repo, 1, 2, "two")

	chapter, err := repo.GetChapterByNumber(1, 3)

	require.NoError(t, err)
	assert.Nil(t, chapter)
}

func TestRepository_GetChapterByNumber_DuplicateNumbers(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Duplicate numbers are permitted; lookup resolves the earliest row
	first := addChapter(t, repo, 1, 1, "first")
	addChapter(t, repo, 1, 1, "second")

	chapter, err := repo.GetChapterByNumber(1, 1)

	require.NoError(t, err)
	require.NotNil(t, chapter)
	assert.Equal(t, first.ID, chapter.ID)
}

func TestRepository_GetNearest(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	one := addChapter(t, repo, 1, 1, "one")
	addChapter(t, repo, 1, 4, "four")
	seven := addChapter(t, repo, 1, 7, "seven")

	before, err := repo.GetNearestBefore(1, 4)
	require.NoError(t, err)
	require.NotNil(t, before)
	assert.Equal(t, one.ID, before.ID)

	after, err := repo.GetNearestAfter(1, 4)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, seven.ID, after.ID)

	none, err := repo.GetNearestBefore(1, 1)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRepository_UpdateChapter(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := addChapter(t, repo, 1, 1, "draft")

	updated, err := repo.UpdateChapter(created.ID, "final", "rewritten", 5)

	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, "rewritten", updated.Content)
	assert.Equal(t, 5, updated.Number)
}

func TestRepository_UpdateChapter_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpdateChapter(999, "title", "content", 1)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteChaptersForBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	addChapter(t, repo, 1, 1, "one")
	addChapter(t, repo, 1, 2, "two")
	kept := addChapter(t, repo, 2, 1, "other book")

	require.NoError(t, repo.DeleteChaptersForBook(1))

	gone, err := repo.GetChaptersForBook(1)
	require.NoError(t, err)
	assert.Empty(t, gone)

	remaining, err := repo.GetChaptersForBook(2)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}
