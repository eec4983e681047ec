package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"
	"aams-service/templates"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender delivers task notifications through the Gmail API
type GmailSender struct {
	gmailService *gmail.Service
	from         string
	logger       logger.Logger
}

// NewGmailSender creates a new Gmail sender
func NewGmailSender(ctx context.Context, tokenSource oauth2.TokenSource, from string, logger logger.Logger) (*GmailSender, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &GmailSender{
		gmailService: service,
		from:         from,
		logger:       logger,
	}, nil
}

var _ repository.NotificationSender = (*GmailSender)(nil)

// Send renders the task snapshot and sends one multipart mail to all
// recipients
func (s *GmailSender) Send(ctx context.Context, recipients []string, subject string, task *entity.Task, authority string) error {
	if len(recipients) == 0 {
		s.logger.Warn("No notification recipients configured, skipping send", "subject", subject)
		return nil
	}

	fullSubject := fmt.Sprintf("%s: %s", subject, task.TaskNumber)
	htmlBody, textBody := templates.RenderTaskEmail(fullSubject, task, authority)

	raw := buildMIMEMessage(s.from, recipients, fullSubject, textBody, htmlBody)
	msg := &gmail.Message{
		Raw: base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(raw)),
	}

	sent, err := s.gmailService.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to send notification mail: %w", err)
	}

	s.logger.Info("Notification mail sent",
		"messageId", sent.Id,
		"subject", fullSubject,
		"recipients", len(recipients))
	return nil
}

const mimeBoundary = "aams-alt-boundary"

func buildMIMEMessage(from string, recipients []string, subject, textBody, htmlBody string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "From: \"ZAF AHQ CITY OPERATIONS\" <%s>\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(recipients, ","))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%s\r\n", mimeBoundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)
	return b.String()
}
