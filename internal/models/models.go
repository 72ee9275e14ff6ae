package models

import (
	"time"
)

// MaxBodyLength 投稿本文と自己紹介の最大文字数
const MaxBodyLength = 140

// User ユーザーモデル
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	// メールアドレスは公開レスポンスに含めない（本人向けレスポンスのみ）
	Email          string    `json:"-" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash   string    `json:"-" gorm:"size:256"`
	AboutMe        string    `json:"about_me" gorm:"size:140"`
	AvatarURL      string    `json:"avatar_url"`
	AvatarPublicID string    `json:"-"`
	LastSeen       time.Time `json:"last_seen"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// リレーション
	Posts []Post `json:"-"`

	// カウント (JSONレスポンス用)
	FollowersCount int64 `json:"followers_count" gorm:"-"`
	FollowingCount int64 `json:"following_count" gorm:"-"`
	PostsCount     int64 `json:"posts_count" gorm:"-"`
}

// Post 投稿モデル。作成後は削除以外の変更を行わない
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"size:140;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`

	// リレーション
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Follow フォローエッジ（follower が followed の投稿を購読する）
// 主キーは (follower_id, followed_id) の複合キー
type Follow struct {
	FollowerID uint      `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint      `json:"followed_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName テーブル名指定
func (Follow) TableName() string {
	return "followers"
}
