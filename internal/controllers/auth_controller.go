package controllers

import (
	"net/http"

	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/monitoring"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
	userService services.UserService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService, userService services.UserService) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
	}
}

// RegisterRequest ユーザー登録リクエスト
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PasswordChangeRequest パスワード変更リクエスト
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ForgotPasswordRequest パスワードリセット要求リクエスト
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest パスワードリセット実行リクエスト
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// AuthResponse 認証レスポンス
type AuthResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// MeResponse 本人向けのユーザー情報レスポンス。メールアドレスは本人にのみ返す
type MeResponse struct {
	*models.User
	Email string `json:"email"`
}

// Register ユーザー登録
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	monitoring.RegisterSuccess.Inc()
	ctx.JSON(http.StatusCreated, AuthResponse{
		User:  user,
		Token: token,
	})
}

// Login ログイン
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		monitoring.LoginFailure.Inc()
		respondError(ctx, err)
		return
	}

	monitoring.LoginSuccess.Inc()
	ctx.JSON(http.StatusOK, AuthResponse{
		User:  user,
		Token: token,
	})
}

// GetMe 現在のユーザー情報を取得（各種カウントとアバターURL付き）
func (c *AuthController) GetMe(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	me, err := c.userService.GetByID(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MeResponse{User: me, Email: me.Email})
}

// ChangePassword パスワードを変更
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	user, exists := currentUser(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req PasswordChangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.authService.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// ForgotPassword パスワードリセットトークンを発行してメールで送信
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.authService.SendPasswordReset(req.Email); err != nil {
		respondError(ctx, err)
		return
	}

	// アカウントの有無に関わらず同じレスポンスを返す
	ctx.JSON(http.StatusOK, gin.H{"message": "check your email for the instructions to reset your password"})
}

// ResetPassword リセットトークンで新しいパスワードを設定
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "password has been reset"})
}
