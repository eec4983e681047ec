package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form used across the service.
const DateLayout = "2006-01-02"

// acceptedDateLayouts are the shapes tolerated in affected-dates input.
var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// NormalizeDateList turns an affected-dates value into an ordered set of
// YYYY-MM-DD strings. The value may arrive as a JSON array, a JSON string
// holding an encoded array, or a comma-separated string. Tokens that do not
// parse as dates are dropped. A nil raw value yields nil.
func NormalizeDateList(raw json.RawMessage) []string {
	tokens := splitDateTokens(raw)

	normalized := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		date, ok := parseDateToken(token)
		if !ok || seen[date] {
			continue
		}
		seen[date] = true
		normalized = append(normalized, date)
	}
	return normalized
}

func splitDateTokens(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil
		}
		return list
	}

	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func parseDateToken(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// DatesToJSON renders a date list to its stored JSON form. An empty or nil
// list serializes to "[]".
func DatesToJSON(dates []string) string {
	if len(dates) == 0 {
		return "[]"
	}
	data, err := json.Marshal(dates)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DatesFromJSON parses the stored JSON form back into a date list.
func DatesFromJSON(s string) []string {
	if s == "" {
		return nil
	}
	var dates []string
	if err := json.Unmarshal([]byte(s), &dates); err != nil {
		return nil
	}
	return dates
}

// NormalizeClockTime validates an H:MM or HH:MM 24-hour time and renders it
// as HH:MM:SS for storage. Empty input is valid and yields the empty string.
func NormalizeClockTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}

	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return "", false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", false
	}
	if fmt.Sprintf("%d:%02d", hours, minutes) != s && fmt.Sprintf("%02d:%02d", hours, minutes) != s {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:00", hours, minutes), true
}

// FlightTime returns the HH:MM difference between two stored HH:MM:SS clock
// times, or the empty string when either side is missing or malformed.
func FlightTime(atd, ata *string) string {
	if atd == nil || ata == nil {
		return ""
	}
	start, err1 := time.Parse("15:04:05", *atd)
	end, err2 := time.Parse("15:04:05", *ata)
	if err1 != nil || err2 != nil {
		return ""
	}

	minutes := int(end.Sub(start).Minutes())
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}
