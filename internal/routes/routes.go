package routes

import (
	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/controllers"
	"github.com/ChroniclesApp/chronicles_backend/internal/middlewares"
	"github.com/ChroniclesApp/chronicles_backend/internal/monitoring"
	"github.com/ChroniclesApp/chronicles_backend/internal/repository"
	"github.com/ChroniclesApp/chronicles_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())
	r.Use(monitoring.InstrumentHandler())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// Cloudinaryサービスを作成
	cloudinaryService, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logrus.Fatalf("Cloudinaryサービスの初期化に失敗しました: %v", err)
	}

	// メールサービスを作成
	mailService, err := services.NewMailService(cfg)
	if err != nil {
		logrus.Fatalf("メールサービスの初期化に失敗しました: %v", err)
	}

	// サービスを作成
	authService := services.NewAuthService(userRepo, mailService, cfg)
	userService := services.NewUserService(userRepo, postRepo, followRepo, cloudinaryService)
	postService := services.NewPostService(postRepo)
	followService := services.NewFollowService(followRepo, userRepo)
	feedService := services.NewFeedService(postRepo, followRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService, userService)
	userController := controllers.NewUserController(userService, cfg.Pagination)
	postController := controllers.NewPostController(postService, cfg.Pagination)
	followController := controllers.NewFollowController(followService, cfg.Pagination)
	feedController := controllers.NewFeedController(feedService, cfg.Pagination)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア。公開ルートでも認証済みなら最終アクセス時刻を記録する
	authMiddleware := middlewares.AuthMiddleware(authService)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(authService)
	lastSeenMiddleware := middlewares.LastSeenMiddleware(userService)

	// Prometheusメトリクス
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware, lastSeenMiddleware, authController.GetMe)
			auth.POST("/change-password", authMiddleware, lastSeenMiddleware, authController.ChangePassword)
			auth.POST("/forgot-password", authController.ForgotPassword)
			auth.POST("/reset-password", authController.ResetPassword)
		}

		// フィードルート
		api.GET("/feed", authMiddleware, lastSeenMiddleware, feedController.GetFeed)

		// 投稿ルート
		posts := api.Group("/posts")
		{
			// 認証不要
			posts.GET("", optionalAuthMiddleware, lastSeenMiddleware, postController.Explore)
			posts.GET("/:id", optionalAuthMiddleware, lastSeenMiddleware, postController.GetByID)

			// 認証が必要
			posts.POST("", authMiddleware, lastSeenMiddleware, postController.Create)
			posts.DELETE("/:id", authMiddleware, lastSeenMiddleware, postController.Delete)
		}

		// ユーザールート
		users := api.Group("/users")
		{
			users.PUT("/profile", authMiddleware, lastSeenMiddleware, userController.UpdateProfile)
			users.PUT("/avatar", authMiddleware, lastSeenMiddleware, userController.UploadAvatar)

			users.GET("/:username", optionalAuthMiddleware, lastSeenMiddleware, userController.GetProfile)
			users.GET("/:username/posts", optionalAuthMiddleware, lastSeenMiddleware, userController.GetUserPosts)
			users.GET("/:username/followers", optionalAuthMiddleware, lastSeenMiddleware, followController.ListFollowers)
			users.GET("/:username/following", optionalAuthMiddleware, lastSeenMiddleware, followController.ListFollowing)
			users.POST("/:username/follow", authMiddleware, lastSeenMiddleware, followController.Follow)
			users.DELETE("/:username/follow", authMiddleware, lastSeenMiddleware, followController.Unfollow)
		}
	}

	return r
}
