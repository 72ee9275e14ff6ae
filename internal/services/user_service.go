package services

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"
	"github.com/ChroniclesApp/chronicles_backend/internal/utils"
)

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetByID(id uint) (*models.User, error)
	GetProfile(username string) (*models.User, error)
	GetUserPosts(username string, page, limit int) ([]models.Post, int64, int, error)
	UpdateProfile(userID uint, username, aboutMe string) (*models.User, error)
	RecordLastSeen(userID uint) error
	UploadAvatar(userID uint, file multipart.File, fileName string) (*models.User, error)
}

// userService UserServiceの実装
type userService struct {
	userRepo          repository.UserRepository
	postRepo          repository.PostRepository
	followRepo        repository.FollowRepository
	cloudinaryService CloudinaryService
}

// NewUserService UserServiceを作成
func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	cloudinaryService CloudinaryService,
) UserService {
	return &userService{
		userRepo:          userRepo,
		postRepo:          postRepo,
		followRepo:        followRepo,
		cloudinaryService: cloudinaryService,
	}
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.withCounts(user)
}

// GetProfile ユーザー名でプロフィールを取得（各種カウント付き）
func (s *userService) GetProfile(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.withCounts(user)
}

// GetUserPosts ユーザーの投稿一覧を取得
func (s *userService) GetUserPosts(username string, page, limit int) ([]models.Post, int64, int, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, 0, 0, err
	}

	posts, total, err := s.postRepo.ListByUser(user.ID, page, limit)
	if err != nil {
		return nil, 0, 0, err
	}

	return posts, total, totalPages(total, limit), nil
}

// UpdateProfile ユーザープロフィールを更新
func (s *userService) UpdateProfile(userID uint, username, aboutMe string) (*models.User, error) {
	// ユーザーを取得
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// 自己紹介の長さを検証
	if utf8.RuneCountInString(aboutMe) > models.MaxBodyLength {
		return nil, fmt.Errorf("%w: about_me must be at most %d characters", apperrors.ErrValidation, models.MaxBodyLength)
	}

	// ユーザー名を更新（空でない場合のみ）。一意制約はリポジトリ側で検出する
	if strings.TrimSpace(username) != "" {
		user.Username = username
	}

	// about_meはnullableなので空文字でも更新する
	user.AboutMe = aboutMe

	// データベースを更新
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.withCounts(user)
}

// RecordLastSeen 最終アクセス時刻を記録
func (s *userService) RecordLastSeen(userID uint) error {
	return s.userRepo.UpdateLastSeen(userID, time.Now().UTC())
}

// UploadAvatar アバター画像をCloudinaryにアップロードしてプロフィールに設定する。
// 既存のアバターがあればCloudinaryから削除する
func (s *userService) UploadAvatar(userID uint, file multipart.File, fileName string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	publicID, url, err := s.cloudinaryService.UploadImage(file, fileName)
	if err != nil {
		return nil, err
	}

	// 古いアバターを削除（失敗しても処理は続行する）
	if user.AvatarPublicID != "" {
		_ = s.cloudinaryService.DeleteImage(user.AvatarPublicID)
	}

	user.AvatarURL = url
	user.AvatarPublicID = publicID

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.withCounts(user)
}

// withCounts フォロワー数・フォロー数・投稿数とアバターURLを補完する
func (s *userService) withCounts(user *models.User) (*models.User, error) {
	followers, err := s.followRepo.CountFollowers(user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(user.ID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.CountByUser(user.ID)
	if err != nil {
		return nil, err
	}

	user.FollowersCount = followers
	user.FollowingCount = following
	user.PostsCount = posts

	// アップロード済みのアバターがなければGravatarを使う
	if user.AvatarURL == "" {
		user.AvatarURL = utils.GravatarURL(user.Email, 128)
	}

	return user, nil
}
