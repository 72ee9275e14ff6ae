package repository

import (
	"testing"

	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB テスト用のインメモリSQLiteデータベースを準備する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&models.User{}, &models.Post{}, &models.Follow{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createTestUser テスト用のユーザーを作成する
func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed",
	}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}
