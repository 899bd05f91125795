package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"

	"ecosnap/internal/config"
)

type EmailService interface {
	SendEmail(ctx context.Context, to []string, subject, body string) error
}

type EmailServiceImpl struct {
	Config *config.Config
	Repo   *EmailRepository
}

func NewEmailService(cfg *config.Config, repo *EmailRepository) EmailService {
	return &EmailServiceImpl{
		Config: cfg,
		Repo:   repo,
	}
}

func (s *EmailServiceImpl) SendEmail(ctx context.Context, to []string, subject, body string) error {
	cfg := s.Config
	if cfg.SMTPHost == "" || cfg.SMTPPort == 0 {
		return errors.New("invalid email configuration: missing host or port")
	}

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)

	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUser
	}

	// Create email record
	emailRecord := &Email{
		From:     from,
		To:       to,
		Subject:  subject,
		HtmlBody: body,
		Status:   EmailQueued,
	}

	if s.Repo != nil {
		_ = s.Repo.Create(ctx, emailRecord)
	}

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"utf-8\"\r\n"+
		"\r\n"+
		"%s\r\n", to[0], subject, body))

	log.Printf("Sending email to %v via %s...", to, addr)
	err := smtp.SendMail(addr, auth, from, to, msg)

	status := EmailSent
	errMsg := ""
	if err != nil {
		status = EmailFailed
		errMsg = err.Error()
	}

	if s.Repo != nil {
		_ = s.Repo.UpdateStatus(ctx, emailRecord.ID, status, errMsg)
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
