package usecase

import (
	"regexp"
	"testing"
	"time"

	"aams-service/internal/domain/entity"
)

func TestProvisionalNumberFormat(t *testing.T) {
	now := time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		status string
		want   string
	}{
		{entity.StatusProvisional, "PROV/JAN/25"},
		{entity.StatusMilitary, "MIL/JAN/25"},
		{entity.StatusCivil, "CIV/JAN/25"},
	}

	pattern := regexp.MustCompile(`^(PROV|MIL|CIV)/[A-Z]{3}/\d{2}$`)

	for _, tt := range tests {
		prefix, err := PrefixForStatus(tt.status)
		if err != nil {
			t.Fatalf("PrefixForStatus(%q) returned error: %v", tt.status, err)
		}
		got := ProvisionalNumber(prefix, now)
		if got != tt.want {
			t.Errorf("ProvisionalNumber(%q) = %q, want %q", tt.status, got, tt.want)
		}
		if !pattern.MatchString(got) {
			t.Errorf("ProvisionalNumber(%q) = %q does not match expected shape", tt.status, got)
		}
	}
}

func TestProvisionalNumberUsesCurrentMonth(t *testing.T) {
	// The flight may be months away; the number still reflects "now"
	december := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC)
	if got := ProvisionalNumber(entity.PrefixProvisional, december); got != "PROV/DEC/24" {
		t.Errorf("got %q, want PROV/DEC/24", got)
	}
}

func TestPrefixForStatusRejectsUnknown(t *testing.T) {
	for _, status := range []string{"confirmed", "cancelled", "", "PROVISIONAL"} {
		if _, err := PrefixForStatus(status); err != entity.ErrInvalidTaskStatus {
			t.Errorf("PrefixForStatus(%q) = %v, want ErrInvalidTaskStatus", status, err)
		}
	}
}

func TestNextConfirmedNumber(t *testing.T) {
	january := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing []string
		now      time.Time
		want     string
	}{
		{
			name:     "increments highest in current month",
			existing: []string{"001/JAN/25", "002/JAN/25"},
			now:      january,
			want:     "003/JAN/25",
		},
		{
			name:     "resets on month rollover",
			existing: []string{"005/DEC/24"},
			now:      january,
			want:     "001/JAN/25",
		},
		{
			name:     "starts at 001 with no history",
			existing: nil,
			now:      january,
			want:     "001/JAN/25",
		},
		{
			name:     "skips malformed numbers",
			existing: []string{"ABC/JAN/25", "12/JAN", "007/JAN/25", "xx9/JAN/25"},
			now:      january,
			want:     "010/JAN/25",
		},
		{
			name:     "ignores other-month numbers mixed in",
			existing: []string{"099/DEC/24", "002/JAN/25", "050/FEB/25"},
			now:      january,
			want:     "003/JAN/25",
		},
		{
			name:     "digits buried in the sequence part still count",
			existing: []string{"A12B/JAN/25"},
			now:      january,
			want:     "013/JAN/25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextConfirmedNumber(tt.existing, tt.now); got != tt.want {
				t.Errorf("NextConfirmedNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextConfirmedNumberPadsPastThreeDigits(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := NextConfirmedNumber([]string{"999/MAR/25"}, now); got != "1000/MAR/25" {
		t.Errorf("got %q, want 1000/MAR/25", got)
	}
}
