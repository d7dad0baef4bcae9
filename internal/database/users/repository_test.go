package users

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
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user, err := repo.CreateUser("alice", "a@x.com", "hashed")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestRepository_CreateUser_DuplicateUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("alice", "a@x.com", "hashed")
	require.NoError(t, err)

	_, err = repo.CreateUser("alice", "other@x.com", "hashed")

	assert.Error(t, err)
}

func TestRepository_GetUserByEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateUser("alice", "a@x.com", "hashed")
	require.NoError(t, err)

	user, err := repo.GetUserByEmail("a@x.com")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_GetUserByEmail_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetUserByEmail("nobody@x.com")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetUserByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateUser("alice", "a@x.com", "hashed")
	require.NoError(t, err)

	user, err := repo.GetUserByUsername("alice")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_UsernameOrEmailTaken(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateUser("alice", "a@x.com", "hashed")
	require.NoError(t, err)

	taken, err := repo.UsernameOrEmailTaken("alice", "fresh@x.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.UsernameOrEmailTaken("bob", "a@x.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.UsernameOrEmailTaken("bob", "b@x.com")
	require.NoError(t, err)
	assert.False(t, taken)
}
