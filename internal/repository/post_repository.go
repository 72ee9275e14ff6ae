package repository

import (
	"errors"
	"fmt"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	Delete(id uint) error
	ListByUser(userID uint, page, limit int) ([]models.Post, int64, error)
	ListAll(page, limit int) ([]models.Post, int64, error)
	ListByUserIDs(userIDs []uint, page, limit int) ([]models.Post, int64, error)
	CountByUser(userID uint) (int64, error)
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 新しい投稿を作成
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID IDで投稿を検索
func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post id=%d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &post, nil
}

// Delete 投稿を削除
func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// ListByUser ユーザーの投稿一覧を新しい順に取得
func (r *postRepository) ListByUser(userID uint, page, limit int) ([]models.Post, int64, error) {
	return r.list(r.db.Model(&models.Post{}).Where("user_id = ?", userID), page, limit)
}

// ListAll 全ユーザーの投稿一覧を新しい順に取得
func (r *postRepository) ListAll(page, limit int) ([]models.Post, int64, error) {
	return r.list(r.db.Model(&models.Post{}), page, limit)
}

// ListByUserIDs 指定したユーザー群の投稿一覧を新しい順に取得
func (r *postRepository) ListByUserIDs(userIDs []uint, page, limit int) ([]models.Post, int64, error) {
	if len(userIDs) == 0 {
		return []models.Post{}, 0, nil
	}
	return r.list(r.db.Model(&models.Post{}).Where("user_id IN ?", userIDs), page, limit)
}

// CountByUser ユーザーの投稿数を取得
func (r *postRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// list 投稿クエリに件数取得・ソート・ページネーションを適用
func (r *postRepository) list(query *gorm.DB, page, limit int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	// 合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	// 新着順でデータを取得
	if err := query.
		Preload("User").
		Order("timestamp DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return posts, total, nil
}
