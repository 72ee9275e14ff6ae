package services

import (
	"testing"
	"time"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"

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

// testConfig テスト用の設定を作成する
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			TokenExpiry:      time.Hour,
			ResetTokenExpiry: 10 * time.Minute,
		},
		Pagination: config.PaginationConfig{
			DefaultPerPage: 20,
			MaxPerPage:     100,
		},
	}
}

// testRepos テスト用のリポジトリ一式を作成する
func testRepos(t *testing.T) (*gorm.DB, repository.UserRepository, repository.PostRepository, repository.FollowRepository) {
	t.Helper()

	db := setupTestDB(t)
	return db,
		repository.NewUserRepository(db),
		repository.NewPostRepository(db),
		repository.NewFollowRepository(db)
}

// createUser リポジトリ経由でテスト用ユーザーを作成する
func createUser(t *testing.T, userRepo repository.UserRepository, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashed",
	}
	require.NoError(t, userRepo.Create(user), "failed to create test user")
	return user
}

// captureMailService 送信内容を記録するMailServiceのモック
type captureMailService struct {
	lastUser  *models.User
	lastToken string
	sent      int
}

func (s *captureMailService) SendPasswordResetEmail(user *models.User, token string) error {
	s.lastUser = user
	s.lastToken = token
	s.sent++
	return nil
}
