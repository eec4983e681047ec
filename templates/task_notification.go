package templates

import (
	"fmt"
	"strings"
	"time"

	"aams-service/internal/domain/entity"
)

const notificationFooter = "This is an automated message from the ZAF AAMS Aircraft Task System. Please do not reply to this email."

// RenderTaskEmail renders the HTML and plain-text bodies for a task
// notification. Subject is the already-composed "AIRCRAFT TASK <ACTION>:
// <number>" line repeated as the heading.
func RenderTaskEmail(subject string, task *entity.Task, authority string) (string, string) {
	date := formatDisplayDate(task.DateOfFlight)
	affectedDays := formatAffectedDays(task.AffectedDates)

	fields := []struct {
		label string
		value string
	}{
		{"Date of Flight", date},
		{"Status", strings.ToUpper(task.TaskStatus)},
		{"Aircraft Type", orNotSpecified(task.AircraftType)},
		{"ETD", orNotSpecified(task.EstimatedTimeOfDeparture)},
		{"Route", orNotSpecified(task.Route)},
		{"Purpose", orNotSpecified(task.Purpose)},
		{"Crew", orNotSpecified(task.Crew)},
		{"Passengers", orNotSpecified(task.Pax)},
		{"Affected Days", affectedDays},
		{"Authority", authority},
	}

	var html strings.Builder
	html.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd;">`)
	fmt.Fprintf(&html, `<h2 style="color: #333; border-bottom: 1px solid #eee; padding-bottom: 10px;">%s</h2>`, subject)
	html.WriteString(`<div style="margin: 20px 0;">`)
	for _, f := range fields {
		fmt.Fprintf(&html, `<p><strong>%s:</strong> %s</p>`, f.label, f.value)
	}
	html.WriteString(`</div>`)
	fmt.Fprintf(&html, `<div style="font-size: 12px; color: #777; margin-top: 30px; border-top: 1px solid #eee; padding-top: 10px;"><p>%s</p></div>`, notificationFooter)
	html.WriteString(`</div>`)

	var text strings.Builder
	text.WriteString(subject + "\n\n")
	for _, f := range fields {
		fmt.Fprintf(&text, "%s: %s\n", f.label, f.value)
	}
	text.WriteString("\n" + notificationFooter + "\n")

	return html.String(), text.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func formatDisplayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02 Jan 2006")
}

func formatAffectedDays(dates []string) string {
	if len(dates) == 0 {
		return "None"
	}
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, formatDisplayDate(d))
	}
	return strings.Join(formatted, ", ")
}
