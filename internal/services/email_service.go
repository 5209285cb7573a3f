package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	appconfig "github.com/bemnascer/bemnascer-backend/internal/config"
)

// EmailService sends transactional mail through Amazon SES. When no sender
// address is configured it becomes a no-op so local environments work
// without AWS credentials.
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

func NewEmailService(cfg *appconfig.Config) (*EmailService, error) {
	if cfg.SESFromEmail == "" {
		slog.Info("email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	slog.Info("email service enabled", "from", cfg.SESFromEmail, "region", cfg.AWSRegion)
	return &EmailService{
		client:     sesv2.NewFromConfig(awsCfg),
		fromEmail:  cfg.SESFromEmail,
		fromName:   cfg.SESFromName,
		appBaseURL: cfg.AppBaseURL,
		enabled:    true,
	}, nil
}

func (s *EmailService) SendPasswordResetEmail(toEmail, toName, resetToken string) error {
	if !s.enabled {
		return nil
	}

	resetLink := fmt.Sprintf("%s/auth/reset-password?token=%s", s.appBaseURL, resetToken)
	subject := "Redefinição de senha"
	body := fmt.Sprintf(`Olá %s,

Recebemos um pedido para redefinir a senha da sua conta.

Acesse o link abaixo para criar uma nova senha:
%s

Se você não fez esse pedido, ignore este e-mail.
`, toName, resetLink)

	return s.send(toEmail, subject, body)
}

func (s *EmailService) SendWelcomeEmail(toEmail, toName string) error {
	if !s.enabled {
		return nil
	}

	subject := "Bem-vinda ao Bem Nascer!"
	body := fmt.Sprintf(`Olá %s,

Sua conta foi criada com sucesso. Acompanhe sua gestação, organize suas
listas e agendamentos pelo aplicativo.

%s
`, toName, s.appBaseURL)

	return s.send(toEmail, subject, body)
}

func (s *EmailService) send(toEmail, subject, body string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}
	return nil
}
