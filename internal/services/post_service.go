package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"
)

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	Create(userID uint, body string) (*models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Delete(postID, requesterID uint) error
	ListExplore(page, limit int) ([]models.Post, int64, int, error)
}

// postService PostServiceの実装
type postService struct {
	postRepo repository.PostRepository
}

// NewPostService PostServiceを作成
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{
		postRepo: postRepo,
	}
}

// Create 新しい投稿を作成。本文は1〜140文字（文字数はruneで数える）
func (s *postService) Create(userID uint, body string) (*models.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: body must not be empty", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(body) > models.MaxBodyLength {
		return nil, fmt.Errorf("%w: body must be at most %d characters", apperrors.ErrValidation, models.MaxBodyLength)
	}

	post := &models.Post{
		Body:      body,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.postRepo.FindByID(post.ID)
}

// GetByID IDで投稿を取得
func (s *postService) GetByID(id uint) (*models.Post, error) {
	return s.postRepo.FindByID(id)
}

// Delete 投稿を削除。投稿の所有者以外は削除できない
func (s *postService) Delete(postID, requesterID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}

	if post.UserID != requesterID {
		return fmt.Errorf("%w: post belongs to another user", apperrors.ErrAuthorization)
	}

	return s.postRepo.Delete(postID)
}

// ListExplore 全ユーザーの投稿一覧を新しい順に取得
func (s *postService) ListExplore(page, limit int) ([]models.Post, int64, int, error) {
	posts, total, err := s.postRepo.ListAll(page, limit)
	if err != nil {
		return nil, 0, 0, err
	}
	return posts, total, totalPages(total, limit), nil
}

// totalPages 総ページ数を計算
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
