package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger logrusを初期化する。出力先は標準出力、フォーマットはJSON
func InitLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
