package services

import (
	"fmt"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"
)

// FollowService フォロー関係に関するサービスインターフェース
type FollowService interface {
	Follow(followerID uint, followedUsername string) error
	Unfollow(followerID uint, followedUsername string) error
	IsFollowing(followerID, followedID uint) (bool, error)
	FollowedIDs(userID uint) ([]uint, error)
	ListFollowers(username string, page, limit int) ([]models.User, int64, int, error)
	ListFollowing(username string, page, limit int) ([]models.User, int64, int, error)
}

// followService FollowServiceの実装
type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService FollowServiceを作成
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow ユーザーをフォローする。自己フォローは拒否し、
// 既にフォロー済みの場合は何もしない
func (s *followService) Follow(followerID uint, followedUsername string) error {
	followed, err := s.userRepo.FindByUsername(followedUsername)
	if err != nil {
		return err
	}

	if followed.ID == followerID {
		return fmt.Errorf("%w: cannot follow yourself", apperrors.ErrValidation)
	}

	return s.followRepo.Create(followerID, followed.ID)
}

// Unfollow フォローを解除する。エッジが存在しない場合は何もしない
func (s *followService) Unfollow(followerID uint, followedUsername string) error {
	followed, err := s.userRepo.FindByUsername(followedUsername)
	if err != nil {
		return err
	}

	return s.followRepo.Delete(followerID, followed.ID)
}

// IsFollowing フォローしているかどうかを確認
func (s *followService) IsFollowing(followerID, followedID uint) (bool, error) {
	return s.followRepo.Exists(followerID, followedID)
}

// FollowedIDs フォロー中のユーザーIDの一覧を取得
func (s *followService) FollowedIDs(userID uint) ([]uint, error) {
	return s.followRepo.FollowedIDs(userID)
}

// ListFollowers ユーザーのフォロワー一覧を取得
func (s *followService) ListFollowers(username string, page, limit int) ([]models.User, int64, int, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, 0, 0, err
	}

	users, total, err := s.followRepo.ListFollowers(user.ID, page, limit)
	if err != nil {
		return nil, 0, 0, err
	}
	return users, total, totalPages(total, limit), nil
}

// ListFollowing ユーザーがフォローしているユーザー一覧を取得
func (s *followService) ListFollowing(username string, page, limit int) ([]models.User, int64, int, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, 0, 0, err
	}

	users, total, err := s.followRepo.ListFollowing(user.ID, page, limit)
	if err != nil {
		return nil, 0, 0, err
	}
	return users, total, totalPages(total, limit), nil
}
