package services

import (
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"
)

// FeedService フィード生成に関するサービスインターフェース
type FeedService interface {
	GetFeed(userID uint, page, limit int) ([]models.Post, int64, int, error)
}

// feedService FeedServiceの実装
type feedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// NewFeedService FeedServiceを作成
func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository) FeedService {
	return &feedService{
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// GetFeed フォロー中のユーザーと自分自身の投稿を新しい順に取得する。
// キャッシュは持たず、リクエストごとに計算する
func (s *feedService) GetFeed(userID uint, page, limit int) ([]models.Post, int64, int, error) {
	followedIDs, err := s.followRepo.FollowedIDs(userID)
	if err != nil {
		return nil, 0, 0, err
	}

	// 自分自身の投稿は常にフィードに含める
	ownerIDs := append(followedIDs, userID)

	posts, total, err := s.postRepo.ListByUserIDs(ownerIDs, page, limit)
	if err != nil {
		return nil, 0, 0, err
	}

	return posts, total, totalPages(total, limit), nil
}
