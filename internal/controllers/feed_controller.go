package controllers

import (
	"net/http"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// FeedController フィードに関するコントローラー
type FeedController struct {
	feedService services.FeedService
	pagination  config.PaginationConfig
}

// NewFeedController FeedControllerを作成
func NewFeedController(feedService services.FeedService, pagination config.PaginationConfig) *FeedController {
	return &FeedController{
		feedService: feedService,
		pagination:  pagination,
	}
}

// GetFeed 自分とフォロー中のユーザーの投稿を新しい順に取得
func (c *FeedController) GetFeed(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	page, limit := parsePagination(ctx, c.pagination)

	posts, total, pages, err := c.feedService.GetFeed(user.ID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
		"pages": pages,
		"page":  page,
	})
}
