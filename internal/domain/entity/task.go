package entity

import (
	"encoding/json"
	"time"
)

// Task statuses
const (
	StatusProvisional = "provisional"
	StatusMilitary    = "military"
	StatusCivil       = "civil"
	StatusConfirmed   = "confirmed"
)

// Task number prefixes for non-confirmed statuses
const (
	PrefixProvisional = "PROV"
	PrefixMilitary    = "MIL"
	PrefixCivil       = "CIV"
)

// Task represents a requested or confirmed flight. A multi-date request is
// stored as one row per affected date, linked by GroupID and sharing one
// task number.
type Task struct {
	ID                       uint     `json:"id"`
	TaskNumber               string   `json:"task_number"`
	TaskStatus               string   `json:"task_status"`
	DateOfFlight             string   `json:"date_of_flight"`
	AircraftType             string   `json:"aircraft_type"`
	EstimatedTimeOfDeparture string   `json:"estimated_time_of_departure"`
	Route                    string   `json:"route"`
	Purpose                  string   `json:"purpose"`
	Crew                     string   `json:"crew"`
	Pax                      string   `json:"pax"`
	OccurrenceStatus         string   `json:"occurrence_status"`
	Authority                string   `json:"authority"`
	AffectedDates            []string `json:"affected_dates"`
	GroupID                  *string  `json:"group_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTaskRequest is the inbound payload for task creation. AffectedDates
// is kept raw because callers send it as an array, a JSON-encoded string, or
// a comma-separated string.
type CreateTaskRequest struct {
	TaskStatus               string          `json:"task_status"`
	DateOfFlight             string          `json:"date_of_flight"`
	AircraftType             string          `json:"aircraft_type"`
	EstimatedTimeOfDeparture string          `json:"estimated_time_of_departure"`
	Route                    string          `json:"route"`
	Purpose                  string          `json:"purpose"`
	Crew                     string          `json:"crew"`
	Pax                      string          `json:"pax"`
	OccurrenceStatus         string          `json:"occurrence_status"`
	Authority                string          `json:"authority"`
	AffectedDates            json.RawMessage `json:"affected_dates"`
}

// UpdateTaskRequest is a partial patch; nil fields are left untouched.
type UpdateTaskRequest struct {
	TaskNumber               *string         `json:"task_number"`
	TaskStatus               *string         `json:"task_status"`
	DateOfFlight             *string         `json:"date_of_flight"`
	AircraftType             *string         `json:"aircraft_type"`
	EstimatedTimeOfDeparture *string         `json:"estimated_time_of_departure"`
	Route                    *string         `json:"route"`
	Purpose                  *string         `json:"purpose"`
	Crew                     *string         `json:"crew"`
	Pax                      *string         `json:"pax"`
	OccurrenceStatus         *string         `json:"occurrence_status"`
	Authority                *string         `json:"authority"`
	AffectedDates            json.RawMessage `json:"affected_dates"`
}

// IsConfirmable reports whether the Confirm operation may be applied to a
// task in the given status. Only provisional and military tasks can be
// confirmed; civil tasks keep their CIV number.
func IsConfirmable(status string) bool {
	return status == StatusProvisional || status == StatusMilitary
}
