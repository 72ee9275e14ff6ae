package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション設定
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Cloudinary CloudinaryConfig
	Mail       MailConfig
	Pagination PaginationConfig
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// AuthConfig 認証設定
type AuthConfig struct {
	JWTSecret        string
	TokenExpiry      time.Duration
	ResetTokenExpiry time.Duration
}

// CloudinaryConfig アバター画像アップロード用のCloudinary設定
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	Enabled   bool
}

// MailConfig パスワードリセットメール送信用のSES設定
type MailConfig struct {
	AWSRegion string
	Sender    string
	Enabled   bool
}

// PaginationConfig ページネーション設定
type PaginationConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

// Load 環境変数から設定をロード
func Load() (*Config, error) {
	// .env ファイルをロード (存在すれば)
	_ = godotenv.Load()

	// デフォルト値を設定
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 10)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			Username: getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "chronicles"),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "your-secret-key"),
			TokenExpiry:      time.Duration(getEnvAsInt("TOKEN_EXPIRY", 24)) * time.Hour,
			ResetTokenExpiry: time.Duration(getEnvAsInt("RESET_TOKEN_EXPIRY", 10)) * time.Minute,
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    getEnv("CLOUDINARY_FOLDER", "chronicles/avatars"),
			Enabled:   getEnvAsBool("CLOUDINARY_ENABLED", false),
		},
		Mail: MailConfig{
			AWSRegion: getEnv("AWS_REGION", "ap-northeast-1"),
			Sender:    getEnv("MAIL_SENDER", "no-reply@chronicles.example.com"),
			Enabled:   getEnvAsBool("MAIL_ENABLED", false),
		},
		Pagination: PaginationConfig{
			DefaultPerPage: getEnvAsInt("POSTS_PER_PAGE", 20),
			MaxPerPage:     getEnvAsInt("POSTS_PER_PAGE_MAX", 100),
		},
	}

	return config, nil
}

// getEnv 環境変数を取得、存在しない場合はデフォルト値を返す
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool 環境変数をboolとして取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
