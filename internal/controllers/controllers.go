package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ChroniclesApp/chronicles_backend/internal/apperrors"
	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// currentUser コンテキストから認証済みユーザーを取得
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	u, ok := user.(*models.User)
	return u, ok
}

// parsePagination クエリパラメータからページネーション設定を解析
func parsePagination(ctx *gin.Context, cfg config.PaginationConfig) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("per_page", strconv.Itoa(cfg.DefaultPerPage)))
	if err != nil || limit < 1 {
		limit = cfg.DefaultPerPage
	}
	if limit > cfg.MaxPerPage {
		limit = cfg.MaxPerPage
	}

	return page, limit
}

// respondError サービス層のエラーをHTTPステータスコードに変換して返す
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicateKey):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAuthorization):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials), errors.Is(err, apperrors.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error("サービス層で予期しないエラーが発生しました")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
