package services

import (
	"fmt"

	"github.com/ChroniclesApp/chronicles_backend/internal/config"
	"github.com/ChroniclesApp/chronicles_backend/internal/models"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/sirupsen/logrus"
)

// MailService メール送信に関するサービスインターフェース
type MailService interface {
	SendPasswordResetEmail(user *models.User, token string) error
}

// mailService SESを使ったMailServiceの実装
type mailService struct {
	ses sesiface.SESAPI
	cfg *config.Config
}

// NewMailService MailServiceを作成。無効化されている場合は
// 送信内容をログに出すだけの実装を返す
func NewMailService(cfg *config.Config) (MailService, error) {
	if !cfg.Mail.Enabled {
		return &logMailService{}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Mail.AWSRegion),
	})
	if err != nil {
		return nil, err
	}

	return &mailService{
		ses: ses.New(sess),
		cfg: cfg,
	}, nil
}

// SendPasswordResetEmail パスワードリセットメールを送信
func (s *mailService) SendPasswordResetEmail(user *models.User, token string) error {
	subject := "[Chronicles] Reset Your Password"
	textBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"To reset your password, submit the following token together with your new password:\n\n"+
			"%s\n\n"+
			"The token expires in 10 minutes. If you have not requested a password reset, simply ignore this message.\n",
		user.Username, token)

	input := &ses.SendEmailInput{
		Source: aws.String(s.cfg.Mail.Sender),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(user.Email)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &ses.Body{
				Text: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(textBody),
				},
			},
		},
	}

	if _, err := s.ses.SendEmail(input); err != nil {
		return fmt.Errorf("メール送信に失敗しました: %v", err)
	}

	return nil
}

// logMailService メール送信無効時の実装。内容をログに出力するだけ
type logMailService struct{}

func (s *logMailService) SendPasswordResetEmail(user *models.User, token string) error {
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("メール送信が無効のため、パスワードリセットトークンをログに出力します")
	return nil
}
