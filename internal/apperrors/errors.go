// Package apperrors はアプリケーション全体で使うエラー種別を定義します。
package apperrors

import "errors"

// 各サービス層が返すエラー種別。コントローラーは errors.Is で判定して
// HTTPステータスコードに変換する。
var (
	// ErrDuplicateKey 一意制約違反（ユーザー名・メールアドレスの重複）
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrValidation 入力値の検証エラー（本文の長さ超過、自己フォローなど）
	ErrValidation = errors.New("validation error")

	// ErrAuthorization 他ユーザーのリソースに対する操作
	ErrAuthorization = errors.New("authorization error")

	// ErrNotFound 対象のリソースが存在しない
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials ユーザー名またはパスワードが正しくない
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken トークンが無効または期限切れ
	ErrInvalidToken = errors.New("invalid token")
)
