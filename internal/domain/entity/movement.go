package entity

import "time"

// Movement represents an actual flight leg flown against a task number.
type Movement struct {
	ID               uint    `json:"id"`
	DateOfFlight     string  `json:"date_of_flight"`
	TaskNumber       string  `json:"task_number"`
	CallSign         string  `json:"call_sign"`
	AircraftType     string  `json:"aircraft_type"`
	DeptAerod        string  `json:"dept_aerod"`
	ATD              *string `json:"atd"`
	EnrouteEstimates string  `json:"enroute_estimates"`
	DestAerod        string  `json:"dest_aerod"`
	Purpose          string  `json:"purpose"`
	ATA              *string `json:"ata"`
	OccurrenceStatus string  `json:"occurrence_status"`
	Remarks          string  `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
