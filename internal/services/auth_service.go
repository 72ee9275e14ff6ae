package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(username, email, password string) (*models.User, string, error)
	Login(username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	ChangePassword(userID uint, currentPassword, newPassword string) error
	SendPasswordReset(email string) error
	ResetPassword(tokenString, newPassword string) error
}

// authService AuthServiceの実装
type authService struct {
	userRepo    repository.UserRepository
	mailService MailService
	config      *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, mailService MailService, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		mailService: mailService,
		config:      cfg,
	}
}

// Claims JWTのペイロード
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// ResetClaims パスワードリセットトークンのペイロード
type ResetClaims struct {
	UserID uint `json:"reset_password"`
	jwt.StandardClaims
}

// Register ユーザー登録
func (s *authService) Register(username, email, password string) (*models.User, string, error) {
	// ユーザー名が既に使用されているか確認
	if existing, err := s.userRepo.FindByUsername(username); err == nil && existing != nil {
		return nil, "", fmt.Errorf("%w: username already taken", apperrors.ErrDuplicateKey)
	}

	// メールアドレスが既に使用されているか確認
	if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, "", fmt.Errorf("%w: email already taken", apperrors.ErrDuplicateKey)
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	// 新しいユーザーを作成
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		LastSeen:     time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	// JWTトークンを生成
	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login ログイン
func (s *authService) Login(username, password string) (*models.User, string, error) {
	// ユーザーを検索
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	// JWTトークンを生成
	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ValidateToken トークンを検証
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	// トークンを解析
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})

	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// GetUserFromToken トークンからユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword ユーザーのパスワードを変更
func (s *authService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	// ユーザーを取得
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	// 現在のパスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}

	// 新しいパスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// パスワードを更新
	user.PasswordHash = string(hashedPassword)
	return s.userRepo.Update(user)
}

// SendPasswordReset パスワードリセットトークンを発行してメールで送信する。
// アカウントの存在を漏らさないため、メールアドレスが未登録でもエラーにしない
func (s *authService) SendPasswordReset(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := s.generateResetToken(user.ID)
	if err != nil {
		return err
	}

	return s.mailService.SendPasswordResetEmail(user, token)
}

// ResetPassword リセットトークンを検証して新しいパスワードを設定
func (s *authService) ResetPassword(tokenString, newPassword string) error {
	claims := &ResetClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	return s.userRepo.Update(user)
}

// generateToken JWTトークンを生成
func (s *authService) generateToken(userID uint) (string, error) {
	// トークンの有効期限を設定
	expirationTime := time.Now().Add(s.config.Auth.TokenExpiry)

	// クレームを作成
	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	// トークンを生成
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}

// generateResetToken パスワードリセット用の短命トークンを生成
func (s *authService) generateResetToken(userID uint) (string, error) {
	expirationTime := time.Now().Add(s.config.Auth.ResetTokenExpiry)

	claims := &ResetClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}
