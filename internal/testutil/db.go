package testutil

import (
	"testing"

	"github.com/glimpse-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory sqlite database and runs AutoMigrate.
// Each call gets its own database, so tests stay isolated even when the
// connection pool opens more than one connection.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "SetupTestDB: open")

	err = db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Snap{},
		&models.Story{},
		&models.StoryView{},
		&models.Chat{},
		&models.Session{},
	)
	require.NoError(t, err, "SetupTestDB: AutoMigrate")

	return db
}

// CreateTestUser inserts a user with the given username and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username, DisplayName: username}
	require.NoError(t, db.Create(user).Error, "CreateTestUser")
	return user
}
