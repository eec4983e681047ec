package repository

import (
	"context"

	"aams-service/internal/domain/entity"
)

// NotificationSender delivers one task notification mail to the recipients.
type NotificationSender interface {
	Send(ctx context.Context, recipients []string, subject string, task *entity.Task, authority string) error
}

// NotificationLogRepository archives dispatched notifications for diagnostics.
type NotificationLogRepository interface {
	Save(ctx context.Context, notification *entity.Notification) error
	FindByTaskID(ctx context.Context, taskID uint, limit int) ([]*entity.Notification, error)
}
