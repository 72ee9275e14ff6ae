package services

import (
	"testing"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_Follow(t *testing.T) {
	t.Run("ユーザーをフォローできる", func(t *testing.T) {
		_, userRepo, _, followRepo := testRepos(t)
		service := NewFollowService(followRepo, userRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		xyz := createUser(t, userRepo, "xyz", "xyz@example.com")

		require.NoError(t, service.Follow(sakhi.ID, "xyz"))

		following, err := service.IsFollowing(sakhi.ID, xyz.ID)
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("自己フォローはErrValidation", func(t *testing.T) {
		_, userRepo, _, followRepo := testRepos(t)
		service := NewFollowService(followRepo, userRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")

		err := service.Follow(sakhi.ID, "sakhi")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("存在しないユーザーへのフォローはErrNotFound", func(t *testing.T) {
		_, userRepo, _, followRepo := testRepos(t)
		service := NewFollowService(followRepo, userRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")

		err := service.Follow(sakhi.ID, "nobody")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("二重フォローでもエッジは1本のまま", func(t *testing.T) {
		db, userRepo, _, followRepo := testRepos(t)
		service := NewFollowService(followRepo, userRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		createUser(t, userRepo, "xyz", "xyz@example.com")

		require.NoError(t, service.Follow(sakhi.ID, "xyz"))
		require.NoError(t, service.Follow(sakhi.ID, "xyz"), "second follow must be a no-op")

		var count int64
		require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	t.Run("フォローを解除できる", func(t *testing.T) {
		_, userRepo, _, followRepo := testRepos(t)
		service := NewFollowService(followRepo, userRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		xyz := createUser(t, userRepo, "xyz", "xyz@example.com")

		require.NoError(t, service.Follow(sakhi.ID, "xyz"))
		require.NoError(t, service.Unfollow(sakhi.ID, "xyz"))

		following, err := service.IsFollowing(sakhi.ID, xyz.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("エッジが存在しなくてもエラーにならない", func(t *testing.T) {
		_, userRepo, _, followRepo := testRepos(t)
		service := NewFollowService(followRepo, userRepo)
		sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
		createUser(t, userRepo, "xyz", "xyz@example.com")

		assert.NoError(t, service.Unfollow(sakhi.ID, "xyz"))
	})
}

func TestFollowService_FollowedIDs(t *testing.T) {
	_, userRepo, _, followRepo := testRepos(t)
	service := NewFollowService(followRepo, userRepo)
	sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
	xyz := createUser(t, userRepo, "xyz", "xyz@example.com")
	abc := createUser(t, userRepo, "abc", "abc@example.com")

	require.NoError(t, service.Follow(sakhi.ID, "xyz"))
	require.NoError(t, service.Follow(sakhi.ID, "abc"))

	ids, err := service.FollowedIDs(sakhi.ID)

	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{xyz.ID, abc.ID}, ids)
}

func TestFollowService_Listings(t *testing.T) {
	_, userRepo, _, followRepo := testRepos(t)
	service := NewFollowService(followRepo, userRepo)
	sakhi := createUser(t, userRepo, "sakhi", "sakhi@example.com")
	xyz := createUser(t, userRepo, "xyz", "xyz@example.com")
	abc := createUser(t, userRepo, "abc", "abc@example.com")

	require.NoError(t, service.Follow(sakhi.ID, "xyz"))
	require.NoError(t, service.Follow(abc.ID, "xyz"))
	require.NoError(t, service.Follow(xyz.ID, "sakhi"))

	t.Run("フォロワー一覧", func(t *testing.T) {
		users, total, pages, err := service.ListFollowers("xyz", 1, 10)

		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Equal(t, 1, pages)
		assert.Len(t, users, 2)
	})

	t.Run("フォロー中一覧", func(t *testing.T) {
		users, total, _, err := service.ListFollowing("xyz", 1, 10)

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, users, 1)
		assert.Equal(t, "sakhi", users[0].Username)
	})

	t.Run("存在しないユーザーはErrNotFound", func(t *testing.T) {
		_, _, _, err := service.ListFollowers("nobody", 1, 10)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
