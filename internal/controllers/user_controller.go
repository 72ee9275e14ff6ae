package controllers

import (
	"net/http"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
	pagination  config.PaginationConfig
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService, pagination config.PaginationConfig) *UserController {
	return &UserController{
		userService: userService,
		pagination:  pagination,
	}
}

// GetProfile ユーザー名でプロフィールを取得
func (c *UserController) GetProfile(ctx *gin.Context) {
	username := ctx.Param("username")

	user, err := c.userService.GetProfile(username)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetUserPosts ユーザーの投稿一覧を取得
func (c *UserController) GetUserPosts(ctx *gin.Context) {
	username := ctx.Param("username")
	page, limit := parsePagination(ctx, c.pagination)

	posts, total, pages, err := c.userService.GetUserPosts(username, page, limit)
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

// UpdateProfile 自分のプロフィールを更新
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	// リクエストをバインド
	var req struct {
		Username string `json:"username"`
		AboutMe  string `json:"about_me"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedUser, err := c.userService.UpdateProfile(user.ID, req.Username, req.AboutMe)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedUser)
}

// UploadAvatar アバター画像をアップロード
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	updatedUser, err := c.userService.UploadAvatar(user.ID, file, fileHeader.Filename)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedUser)
}
