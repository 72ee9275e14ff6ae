package services

import (
	"testing"
	"time"

	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addPost 指定した時刻の投稿をリポジトリ経由で作成する
func addPost(t *testing.T, postRepo repository.PostRepository, userID uint, body string, ts time.Time) {
	t.Helper()
	require.NoError(t, postRepo.Create(&models.Post{
		Body:      body,
		Timestamp: ts,
		UserID:    userID,
	}))
}

// feedBodies フィードの本文一覧を取り出す
func feedBodies(posts []models.Post) []string {
	bodies := make([]string, 0, len(posts))
	for _, p := range posts {
		bodies = append(bodies, p.Body)
	}
	return bodies
}

func TestFeedService_GetFeed(t *testing.T) {
	t.Run("自分の投稿は常にフィードに含まれる", func(t *testing.T) {
		_, userRepo, postRepo, followRepo := testRepos(t)
		service := NewFeedService(postRepo, followRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")

		addPost(t, postRepo, sakhi.ID, "my own post", time.Now().UTC())

		posts, total, _, err := service.GetFeed(sakhi.ID, 1, 10)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Contains(t, feedBodies(posts), "my own post")
	})

	t.Run("フォローと解除でフィードが変わる", func(t *testing.T) {
		// sakhi (id=1) が xyz (id=2) をフォロー、xyz が "Hello" を投稿
		_, userRepo, postRepo, followRepo := testRepos(t)
		followService := NewFollowService(followRepo, userRepo)
		feedService := NewFeedService(postRepo, followRepo)

		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		xyz := createUser(t, userRepo, "xyz", "xyz@example.com")

		require.NoError(t, followService.Follow(sakhi.ID, "xyz"))
		addPost(t, postRepo, xyz.ID, "Hello", time.Now().UTC())

		// フォロー中は xyz の投稿が含まれる
		posts, _, _, err := feedService.GetFeed(sakhi.ID, 1, 10)
		require.NoError(t, err)
		assert.Contains(t, feedBodies(posts), "Hello")

		// フォロー解除後は含まれない
		require.NoError(t, followService.Unfollow(sakhi.ID, "xyz"))

		posts, _, _, err = feedService.GetFeed(sakhi.ID, 1, 10)
		require.NoError(t, err)
		assert.NotContains(t, feedBodies(posts), "Hello")
	})

	t.Run("フォローしていないユーザーの投稿は含まれない", func(t *testing.T) {
		_, userRepo, postRepo, followRepo := testRepos(t)
		service := NewFeedService(postRepo, followRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		outsider := createUser(t, userRepo, "outsider", "outsider@example.com")

		addPost(t, postRepo, outsider.ID, "not for you", time.Now().UTC())

		posts, total, _, err := service.GetFeed(sakhi.ID, 1, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, posts)
	})

	t.Run("新しい順に並びページネーションされる", func(t *testing.T) {
		_, userRepo, postRepo, followRepo := testRepos(t)
		followService := NewFollowService(followRepo, userRepo)
		service := NewFeedService(postRepo, followRepo)

		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		xyz := createUser(t, userRepo, "xyz", "xyz@example.com")
		require.NoError(t, followService.Follow(sakhi.ID, "xyz"))

		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		addPost(t, postRepo, sakhi.ID, "oldest", base)
		addPost(t, postRepo, xyz.ID, "middle", base.Add(time.Minute))
		addPost(t, postRepo, sakhi.ID, "newest", base.Add(2*time.Minute))

		page1, total, pages, err := service.GetFeed(sakhi.ID, 1, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Equal(t, 2, pages)
		assert.Equal(t, []string{"newest", "middle"}, feedBodies(page1))

		page2, _, _, err := service.GetFeed(sakhi.ID, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"oldest"}, feedBodies(page2))
	})
}
