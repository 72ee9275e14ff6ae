package main

import (
	"os"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/logger"
	"github.com/ChroniclesApp/chronicles_backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// ロガーを初期化
	logger.InitLogger()
	logrus.Info("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// SQLDBインスタンスを取得して接続プール設定を表示
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("SQLDBインスタンス取得に失敗しました: %v", err)
	}
	logrus.Infof("データベース設定: MaxOpenConns=%d, MaxIdleConns=%d",
		sqlDB.Stats().MaxOpenConnections, sqlDB.Stats().Idle)

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db)

	// サーバー起動
	logrus.Infof("サーバーを開始しています... PORT: %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logrus.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
