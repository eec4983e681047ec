package entity

import "time"

// TrainingFlight represents a training sortie. ATD and ATA are stored as
// HH:MM:SS clock times; TotalFlightTime is derived, never stored.
type TrainingFlight struct {
	ID           uint    `json:"id"`
	DateOfFlight string  `json:"date_of_flight"`
	CallSign     string  `json:"call_sign"`
	AircraftType string  `json:"aircraft_type"`
	ATD          *string `json:"atd"`
	Route        string  `json:"route"`
	ATA          *string `json:"ata"`
	Duty         string  `json:"duty"`
	Crew         string  `json:"crew"`

	// TotalFlightTime is ATA minus ATD rendered as HH:MM, empty unless both
	// times are present.
	TotalFlightTime string `json:"total_flight_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
