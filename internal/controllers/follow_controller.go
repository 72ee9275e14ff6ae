package controllers

import (
	"net/http"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/monitoring"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// FollowController フォロー関係に関するコントローラー
type FollowController struct {
	followService services.FollowService
	pagination    config.PaginationConfig
}

// NewFollowController FollowControllerを作成
func NewFollowController(followService services.FollowService, pagination config.PaginationConfig) *FollowController {
	return &FollowController{
		followService: followService,
		pagination:    pagination,
	}
}

// Follow ユーザーをフォロー
func (c *FollowController) Follow(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	username := ctx.Param("username")

	if err := c.followService.Follow(user.ID, username); err != nil {
		respondError(ctx, err)
		return
	}

	monitoring.FollowsCreated.Inc()
	ctx.JSON(http.StatusOK, gin.H{"message": "following " + username})
}

// Unfollow フォローを解除
func (c *FollowController) Unfollow(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	username := ctx.Param("username")

	if err := c.followService.Unfollow(user.ID, username); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "unfollowed " + username})
}

// ListFollowers ユーザーのフォロワー一覧を取得
func (c *FollowController) ListFollowers(ctx *gin.Context) {
	username := ctx.Param("username")
	page, limit := parsePagination(ctx, c.pagination)

	users, total, pages, err := c.followService.ListFollowers(username, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"pages": pages,
		"page":  page,
	})
}

// ListFollowing ユーザーがフォローしているユーザー一覧を取得
func (c *FollowController) ListFollowing(ctx *gin.Context) {
	username := ctx.Param("username")
	page, limit := parsePagination(ctx, c.pagination)

	users, total, pages, err := c.followService.ListFollowing(username, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"pages": pages,
		"page":  page,
	})
}
