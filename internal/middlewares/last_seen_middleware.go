package middlewares

import (
	"github.com/ChroniclesApp/chronicles_backend/internal/models"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LastSeenMiddleware 認証済みリクエストごとに最終アクセス時刻を記録する。
// AuthMiddleware / OptionalAuthMiddleware より後に適用すること
func LastSeenMiddleware(userService services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user, exists := ctx.Get("user"); exists {
			if u, ok := user.(*models.User); ok {
				if err := userService.RecordLastSeen(u.ID); err != nil {
					// 記録の失敗でリクエストは止めない
					logrus.WithError(err).Warn("最終アクセス時刻の更新に失敗しました")
				}
			}
		}
		ctx.Next()
	}
}
