package mailer

import (
	"context"
	"fmt"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"
)

// LogSender is a no-mail fallback used when Gmail credentials are absent; it
// logs what would have been sent. Useful for local development.
type LogSender struct {
	logger logger.Logger
}

// NewLogSender creates a new log-only sender
func NewLogSender(logger logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

var _ repository.NotificationSender = (*LogSender)(nil)

func (s *LogSender) Send(ctx context.Context, recipients []string, subject string, task *entity.Task, authority string) error {
	s.logger.Info("Notification (log only)",
		"subject", fmt.Sprintf("%s: %s", subject, task.TaskNumber),
		"recipients", len(recipients),
		"authority", authority)
	return nil
}
