package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// createTestPost 指定した時刻の投稿を作成する
func createTestPost(t *testing.T, db *gorm.DB, userID uint, body string, ts time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		Body:      body,
		Timestamp: ts,
		UserID:    userID,
	}
	require.NoError(t, db.Create(post).Error, "failed to create test post")
	return post
}

func TestPostRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "sakhi", "sakhi@example.com")

	post := &models.Post{
		Body:      "first post",
		Timestamp: time.Now().UTC(),
		UserID:    user.ID,
	}
	require.NoError(t, repo.Create(post))

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first post", found.Body)
	require.NotNil(t, found.User, "author should be preloaded")
	assert.Equal(t, "sakhi", found.User.Username)

	_, err = repo.FindByID(999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "sakhi", "sakhi@example.com")
	other := createTestUser(t, db, "xyz", "xyz@example.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createTestPost(t, db, user.ID, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}
	createTestPost(t, db, other.ID, "someone else", base)

	t.Run("新しい順に取得する", func(t *testing.T) {
		posts, total, err := repo.ListByUser(user.ID, 1, 10)

		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		require.Len(t, posts, 5)
		for i := 0; i < len(posts)-1; i++ {
			assert.False(t, posts[i].Timestamp.Before(posts[i+1].Timestamp),
				"posts must be ordered newest first")
		}
		assert.Equal(t, "post 4", posts[0].Body)
	})

	t.Run("ページネーションが機能する", func(t *testing.T) {
		page1, total, err := repo.ListByUser(user.ID, 1, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		require.Len(t, page1, 2)
		assert.Equal(t, "post 4", page1[0].Body)

		page3, _, err := repo.ListByUser(user.ID, 3, 2)
		require.NoError(t, err)
		require.Len(t, page3, 1)
		assert.Equal(t, "post 0", page3[0].Body)
	})
}

func TestPostRepository_ListByUserIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	sakhi := createTestUser(t, db, "sakhi", "sakhi@example.com")
	xyz := createTestUser(t, db, "xyz", "xyz@example.com")
	outsider := createTestUser(t, db, "outsider", "outsider@example.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, sakhi.ID, "mine", base)
	createTestPost(t, db, xyz.ID, "followed", base.Add(time.Minute))
	createTestPost(t, db, outsider.ID, "not followed", base.Add(2*time.Minute))

	t.Run("指定したユーザーの投稿のみ取得する", func(t *testing.T) {
		posts, total, err := repo.ListByUserIDs([]uint{sakhi.ID, xyz.ID}, 1, 10)

		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, posts, 2)
		assert.Equal(t, "followed", posts[0].Body)
		assert.Equal(t, "mine", posts[1].Body)
	})

	t.Run("空のID一覧は空の結果", func(t *testing.T) {
		posts, total, err := repo.ListByUserIDs(nil, 1, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	sakhi := createTestUser(t, db, "sakhi", "sakhi@example.com")
	xyz := createTestUser(t, db, "xyz", "xyz@example.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, sakhi.ID, "old", base)
	createTestPost(t, db, xyz.ID, "new", base.Add(time.Hour))

	posts, total, err := repo.ListAll(1, 10)

	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Body)
}

func TestPostRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "sakhi", "sakhi@example.com")
	post := createTestPost(t, db, user.ID, "to delete", time.Now().UTC())

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.FindByID(post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostRepository_CountByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "sakhi", "sakhi@example.com")

	createTestPost(t, db, user.ID, "one", time.Now().UTC())
	createTestPost(t, db, user.ID, "two", time.Now().UTC())

	count, err := repo.CountByUser(user.ID)

	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
