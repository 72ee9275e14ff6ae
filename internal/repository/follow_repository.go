package repository

import (
	"errors"

	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"gorm.io/gorm"
)

// FollowRepository フォローエッジに関するデータベース操作を行うインターフェース
type FollowRepository interface {
	Create(followerID, followedID uint) error
	Delete(followerID, followedID uint) error
	Exists(followerID, followedID uint) (bool, error)
	FollowedIDs(followerID uint) ([]uint, error)
	ListFollowers(userID uint, page, limit int) ([]models.User, int64, error)
	ListFollowing(userID uint, page, limit int) ([]models.User, int64, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
}

// followRepository FollowRepositoryの実装
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository FollowRepositoryを作成
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create フォローエッジを作成。既にエッジが存在する場合は何もしない
func (r *followRepository) Create(followerID, followedID uint) error {
	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.Create(&follow).Error; err != nil {
		// 複合主キーの重複は「既にフォロー済み」なのでエラーにしない
		if isDuplicateKeyErr(err) {
			return nil
		}
		return err
	}
	return nil
}

// Delete フォローエッジを削除。エッジが存在しない場合は何もしない
func (r *followRepository) Delete(followerID, followedID uint) error {
	return r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

// Exists フォローエッジが存在するか確認
func (r *followRepository) Exists(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// FollowedIDs ユーザーがフォローしているユーザーIDの一覧を取得
func (r *followRepository) FollowedIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return ids, nil
}

// ListFollowers ユーザーのフォロワー一覧を取得
func (r *followRepository) ListFollowers(userID uint, page, limit int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).
		Joins("JOIN followers ON followers.follower_id = users.id").
		Where("followers.followed_id = ?", userID)
	return r.listUsers(query, page, limit)
}

// ListFollowing ユーザーがフォローしているユーザー一覧を取得
func (r *followRepository) ListFollowing(userID uint, page, limit int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).
		Joins("JOIN followers ON followers.followed_id = users.id").
		Where("followers.follower_id = ?", userID)
	return r.listUsers(query, page, limit)
}

// CountFollowers フォロワー数を取得
func (r *followRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

// CountFollowing フォロー中のユーザー数を取得
func (r *followRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

// listUsers ユーザークエリに件数取得・ページネーションを適用
func (r *followRepository) listUsers(query *gorm.DB, page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	if err := query.
		Order("users.username ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return users, total, nil
}
