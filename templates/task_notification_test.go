package templates

import (
	"strings"
	"testing"

	"aams-service/internal/domain/entity"
)

func TestRenderTaskEmail(t *testing.T) {
	task := &entity.Task{
		TaskNumber:    "003/JAN/25",
		TaskStatus:    "confirmed",
		DateOfFlight:  "2025-01-20",
		AircraftType:  "C-27J",
		AffectedDates: []string{"2025-01-20", "2025-01-21"},
	}

	html, text := RenderTaskEmail("AIRCRAFT TASK CONFIRMED: 003/JAN/25", task, "AHQ OPS")

	for _, want := range []string{
		"AIRCRAFT TASK CONFIRMED: 003/JAN/25",
		"20 Jan 2025",
		"CONFIRMED",
		"C-27J",
		"20 Jan 2025, 21 Jan 2025",
		"AHQ OPS",
		notificationFooter,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text body missing %q", want)
		}
	}

	// Optional fields fall back to a placeholder
	if !strings.Contains(text, "Route: Not specified") {
		t.Error("empty route should render as Not specified")
	}
}

func TestRenderTaskEmailNoAffectedDays(t *testing.T) {
	task := &entity.Task{
		TaskNumber:   "PROV/JAN/25",
		TaskStatus:   "provisional",
		DateOfFlight: "2025-01-20",
	}

	_, text := RenderTaskEmail("AIRCRAFT TASK RECEIVED: PROV/JAN/25", task, "AHQ OPS")

	if !strings.Contains(text, "Affected Days: None") {
		t.Error("empty affected dates should render as None")
	}
}
