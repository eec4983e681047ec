package usecase

import (
	"context"
	"fmt"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/internal/domain/repository"
	"aams-service/pkg/logger"
	"aams-service/pkg/metrics"
)

// Notifier dispatches lifecycle notifications. Dispatch never blocks and
// never reports failure to the caller; the write it announces is already
// committed by the time it runs.
type Notifier interface {
	Dispatch(action string, task *entity.Task)
}

type dispatchJob struct {
	action string
	task   entity.Task
}

// MailNotifier queues notifications onto a single worker that mails them and
// archives the outcome.
type MailNotifier struct {
	sender     repository.NotificationSender
	log        repository.NotificationLogRepository
	recipients []string
	logger     logger.Logger
	metrics    *metrics.Metrics
	queue      chan dispatchJob
}

// NewMailNotifier creates a new mail notifier. log and m may be nil.
func NewMailNotifier(
	sender repository.NotificationSender,
	log repository.NotificationLogRepository,
	recipients []string,
	logger logger.Logger,
	m *metrics.Metrics,
) *MailNotifier {
	return &MailNotifier{
		sender:     sender,
		log:        log,
		recipients: recipients,
		logger:     logger,
		metrics:    m,
		queue:      make(chan dispatchJob, 64),
	}
}

// Start drains the queue until ctx is cancelled
func (n *MailNotifier) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			n.logger.Info("Notification dispatcher stopped")
			return
		case job := <-n.queue:
			n.dispatch(ctx, job)
		}
	}
}

// Dispatch enqueues one notification for the worker. The task is copied so
// later edits cannot change what gets mailed. A full queue drops the
// notification rather than blocking the request path.
func (n *MailNotifier) Dispatch(action string, task *entity.Task) {
	if task == nil {
		return
	}
	select {
	case n.queue <- dispatchJob{action: action, task: *task}:
	default:
		n.logger.Warn("Notification queue full, dropping notification",
			"action", action,
			"taskId", task.ID)
	}
}

func (n *MailNotifier) dispatch(ctx context.Context, job dispatchJob) {
	subject := fmt.Sprintf("AIRCRAFT TASK %s", job.action)
	authority := job.task.Authority
	if authority == "" {
		authority = "Unknown Authority"
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	record := &entity.Notification{
		Action:       job.action,
		Subject:      subject,
		Recipients:   n.recipients,
		TaskID:       job.task.ID,
		TaskNumber:   job.task.TaskNumber,
		Authority:    authority,
		Status:       entity.NotificationSent,
		DispatchedAt: time.Now(),
	}

	if err := n.sender.Send(sendCtx, n.recipients, subject, &job.task, authority); err != nil {
		// Failures are logged and archived, never propagated
		n.logger.Error("Failed to send notification",
			"action", job.action,
			"taskId", job.task.ID,
			"taskNumber", job.task.TaskNumber,
			"error", err)
		record.Status = entity.NotificationFailed
		record.ErrorDetail = err.Error()
	}

	if n.metrics != nil {
		n.metrics.NotificationsSent.WithLabelValues(record.Status).Inc()
	}

	if n.log != nil {
		if err := n.log.Save(sendCtx, record); err != nil {
			n.logger.Error("Failed to archive notification", "error", err)
		}
	}
}
