package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository ユーザーに関するデータベース操作を行うインターフェース
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastSeen(id uint, t time.Time) error
	Delete(id uint) error
}

// userRepository UserRepositoryの実装
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository UserRepositoryを作成
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 新しいユーザーを作成。ユーザー名またはメールアドレスが重複している
// 場合は ErrDuplicateKey を返す
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicateKey)
		}
		return err
	}
	return nil
}

// FindByID IDでユーザーを検索
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user id=%d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername ユーザー名でユーザーを検索
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail メールアドレスでユーザーを検索
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user email=%s", apperrors.ErrNotFound, email)
		}
		return nil, err
	}
	return &user, nil
}

// Update ユーザー情報を更新
func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicateKey)
		}
		return err
	}
	return nil
}

// UpdateLastSeen 最終アクセス時刻のみを更新
func (r *userRepository) UpdateLastSeen(id uint, t time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_seen", t).Error
}

// Delete ユーザーを削除
func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
