package controllers

import (
	"net/http"
	"strconv"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/monitoring"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
	pagination  config.PaginationConfig
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService, pagination config.PaginationConfig) *PostController {
	return &PostController{
		postService: postService,
		pagination:  pagination,
	}
}

// CreatePostRequest 投稿作成リクエスト
type CreatePostRequest struct {
	Body string `json:"body" binding:"required"`
}

// Create 新しい投稿を作成
func (c *PostController) Create(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := c.postService.Create(user.ID, req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	monitoring.PostsCreated.Inc()
	ctx.JSON(http.StatusCreated, post)
}

// GetByID IDで投稿を取得
func (c *PostController) GetByID(ctx *gin.Context) {
	// IDを解析
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := c.postService.GetByID(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete 投稿を削除（所有者のみ）
func (c *PostController) Delete(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := c.postService.Delete(uint(id), user.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// Explore 全ユーザーの投稿一覧を新しい順に取得
func (c *PostController) Explore(ctx *gin.Context) {
	page, limit := parsePagination(ctx, c.pagination)

	posts, total, pages, err := c.postService.ListExplore(page, limit)
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
