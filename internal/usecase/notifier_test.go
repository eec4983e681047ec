package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"aams-service/internal/domain/entity"
	"aams-service/pkg/logger"
)

type MockSender struct {
	mu    sync.Mutex
	calls []struct {
		subject   string
		task      entity.Task
		authority string
	}
	err error
}

func (m *MockSender) Send(ctx context.Context, recipients []string, subject string, task *entity.Task, authority string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, struct {
		subject   string
		task      entity.Task
		authority string
	}{subject, *task, authority})
	return m.err
}

type MockNotificationLog struct {
	mu    sync.Mutex
	saved []*entity.Notification
	done  chan struct{}
}

func (m *MockNotificationLog) Save(ctx context.Context, n *entity.Notification) error {
	m.mu.Lock()
	m.saved = append(m.saved, n)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *MockNotificationLog) FindByTaskID(ctx context.Context, taskID uint, limit int) ([]*entity.Notification, error) {
	return nil, nil
}

func runNotifier(t *testing.T, sender *MockSender, log *MockNotificationLog) (*MailNotifier, func()) {
	t.Helper()
	n := NewMailNotifier(sender, log, []string{"ops@afhq.example"}, logger.NewNop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go n.Start(ctx)
	return n, cancel
}

func waitForSave(t *testing.T, log *MockNotificationLog) {
	t.Helper()
	select {
	case <-log.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification dispatch")
	}
}

func TestNotifierSendsAndArchives(t *testing.T) {
	sender := &MockSender{}
	log := &MockNotificationLog{done: make(chan struct{}, 1)}
	notifier, stop := runNotifier(t, sender, log)
	defer stop()

	notifier.Dispatch(entity.ActionConfirmed, &entity.Task{
		ID:         42,
		TaskNumber: "003/JAN/25",
		Authority:  "AHQ OPS",
	})
	waitForSave(t, log)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.calls) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.calls))
	}
	if sender.calls[0].subject != "AIRCRAFT TASK CONFIRMED" {
		t.Errorf("subject = %q, want AIRCRAFT TASK CONFIRMED", sender.calls[0].subject)
	}
	if sender.calls[0].authority != "AHQ OPS" {
		t.Errorf("authority = %q, want AHQ OPS", sender.calls[0].authority)
	}

	log.mu.Lock()
	defer log.mu.Unlock()
	if len(log.saved) != 1 {
		t.Fatalf("expected 1 archived record, got %d", len(log.saved))
	}
	record := log.saved[0]
	if record.Status != entity.NotificationSent || record.TaskID != 42 {
		t.Errorf("archived record = %+v, want SENT for task 42", record)
	}
}

func TestNotifierArchivesFailures(t *testing.T) {
	sender := &MockSender{err: errors.New("smtp unavailable")}
	log := &MockNotificationLog{done: make(chan struct{}, 1)}
	notifier, stop := runNotifier(t, sender, log)
	defer stop()

	notifier.Dispatch(entity.ActionReceived, &entity.Task{ID: 1, TaskNumber: "PROV/JAN/25"})
	waitForSave(t, log)

	log.mu.Lock()
	defer log.mu.Unlock()
	record := log.saved[0]
	if record.Status != entity.NotificationFailed {
		t.Errorf("status = %q, want FAILED", record.Status)
	}
	if record.ErrorDetail == "" {
		t.Error("failed record must carry the error detail")
	}
}

func TestNotifierDefaultsMissingAuthority(t *testing.T) {
	sender := &MockSender{}
	log := &MockNotificationLog{done: make(chan struct{}, 1)}
	notifier, stop := runNotifier(t, sender, log)
	defer stop()

	notifier.Dispatch(entity.ActionUpdated, &entity.Task{ID: 2})
	waitForSave(t, log)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if sender.calls[0].authority != "Unknown Authority" {
		t.Errorf("authority = %q, want Unknown Authority", sender.calls[0].authority)
	}
}

func TestNotifierCopiesTaskAtDispatch(t *testing.T) {
	sender := &MockSender{}
	log := &MockNotificationLog{done: make(chan struct{}, 1)}
	notifier, stop := runNotifier(t, sender, log)
	defer stop()

	task := &entity.Task{ID: 3, TaskNumber: "PROV/JAN/25"}
	notifier.Dispatch(entity.ActionReceived, task)
	task.TaskNumber = "mutated-after-dispatch"
	waitForSave(t, log)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if sender.calls[0].task.TaskNumber != "PROV/JAN/25" {
		t.Errorf("mailed number = %q, want the snapshot taken at dispatch",
			sender.calls[0].task.TaskNumber)
	}
}

func TestNotifierIgnoresNilTask(t *testing.T) {
	notifier := NewMailNotifier(&MockSender{}, nil, nil, logger.NewNop(), nil)
	// Must not panic or enqueue
	notifier.Dispatch(entity.ActionReceived, nil)
}
