package entity

import "time"

// Notification dispatch actions
const (
	ActionReceived  = "RECEIVED"
	ActionUpdated   = "UPDATED"
	ActionConfirmed = "CONFIRMED"
	ActionRemoved   = "REMOVED"
)

// Notification dispatch statuses
const (
	NotificationSent   = "SENT"
	NotificationFailed = "FAILED"
)

// Notification is the archived record of one outbound mail dispatch.
type Notification struct {
	ID          string    `bson:"_id,omitempty"`
	Action      string    `bson:"action"`
	Subject     string    `bson:"subject"`
	Recipients  []string  `bson:"recipients"`
	TaskID      uint      `bson:"taskId"`
	TaskNumber  string    `bson:"taskNumber"`
	Authority   string    `bson:"authority"`
	Status      string    `bson:"status"`
	ErrorDetail string    `bson:"errorDetail,omitempty"`
	DispatchedAt time.Time `bson:"dispatchedAt"`
}
