package utils

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeDateList(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
		want []string
	}{
		{
			name: "json array",
			raw:  json.RawMessage(`["2025-01-20","2025-01-21"]`),
			want: []string{"2025-01-20", "2025-01-21"},
		},
		{
			name: "json-encoded array inside a string",
			raw:  json.RawMessage(`"[\"2025-01-20\",\"2025-01-21\"]"`),
			want: []string{"2025-01-20", "2025-01-21"},
		},
		{
			name: "comma-separated string",
			raw:  json.RawMessage(`"2025-01-20, 2025-01-21"`),
			want: []string{"2025-01-20", "2025-01-21"},
		},
		{
			name: "duplicates collapse, order preserved",
			raw:  json.RawMessage(`["2025-01-21","2025-01-20","2025-01-21"]`),
			want: []string{"2025-01-21", "2025-01-20"},
		},
		{
			name: "unparseable tokens dropped",
			raw:  json.RawMessage(`["2025-01-20","not-a-date","2025-13-40"]`),
			want: []string{"2025-01-20"},
		},
		{
			name: "timestamps reduce to dates",
			raw:  json.RawMessage(`["2025-01-20T08:30:00Z","2025-01-21 09:00:00"]`),
			want: []string{"2025-01-20", "2025-01-21"},
		},
		{
			name: "slash dates accepted",
			raw:  json.RawMessage(`"2025/01/20"`),
			want: []string{"2025-01-20"},
		},
		{
			name: "empty string",
			raw:  json.RawMessage(`""`),
			want: []string{},
		},
		{
			name: "null",
			raw:  json.RawMessage(`null`),
			want: []string{},
		},
		{
			name: "nil",
			raw:  nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDateList(tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeDateList(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDatesToJSON(t *testing.T) {
	if got := DatesToJSON(nil); got != "[]" {
		t.Errorf("DatesToJSON(nil) = %q, want []", got)
	}
	if got := DatesToJSON([]string{"2025-01-20"}); got != `["2025-01-20"]` {
		t.Errorf("DatesToJSON = %q", got)
	}
}

func TestDatesRoundTrip(t *testing.T) {
	dates := []string{"2025-01-20", "2025-01-21"}
	if got := DatesFromJSON(DatesToJSON(dates)); !reflect.DeepEqual(got, dates) {
		t.Errorf("round trip = %v, want %v", got, dates)
	}
	if got := DatesFromJSON("not json"); got != nil {
		t.Errorf("DatesFromJSON(garbage) = %v, want nil", got)
	}
}

func TestNormalizeClockTime(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{"08:30", "08:30:00", true},
		{"8:30", "08:30:00", true},
		{"23:59", "23:59:00", true},
		{"0:00", "00:00:00", true},
		{"", "", true},
		{"  ", "", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"12:5", "", false},
		{"noon", "", false},
		{"08:30:00", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeClockTime(tt.in)
		if ok != tt.valid || got != tt.want {
			t.Errorf("NormalizeClockTime(%q) = (%q, %v), want (%q, %v)",
				tt.in, got, ok, tt.want, tt.valid)
		}
	}
}

func TestFlightTime(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		atd  *string
		ata  *string
		want string
	}{
		{"normal leg", str("08:30:00"), str("10:15:00"), "01:45"},
		{"zero duration", str("08:30:00"), str("08:30:00"), "00:00"},
		{"arrival before departure", str("10:00:00"), str("09:00:00"), "-01:00"},
		{"missing departure", nil, str("10:00:00"), ""},
		{"missing arrival", str("08:30:00"), nil, ""},
		{"malformed time", str("8:30"), str("10:00:00"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlightTime(tt.atd, tt.ata); got != tt.want {
				t.Errorf("FlightTime = %q, want %q", got, tt.want)
			}
		})
	}
}
