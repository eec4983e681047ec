package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"aams-service/internal/domain/entity"
)

// Clock supplies the current time; injected so numbering is testable.
type Clock func() time.Time

// monthYearTokens renders a timestamp as the MON and YY components of a task
// number, e.g. "JAN", "25".
func monthYearTokens(now time.Time) (string, string) {
	return strings.ToUpper(now.Format("Jan")), now.Format("06")
}

// numberSuffix returns the "/MON/YY" tail shared by every task number minted
// in the month of now.
func numberSuffix(now time.Time) string {
	month, year := monthYearTokens(now)
	return fmt.Sprintf("/%s/%s", month, year)
}

// ProvisionalNumber builds a non-confirmed task number from a status prefix
// and the current time. The month and year always come from now, never from
// the flight date.
func ProvisionalNumber(prefix string, now time.Time) string {
	month, year := monthYearTokens(now)
	return fmt.Sprintf("%s/%s/%s", prefix, month, year)
}

// NextConfirmedNumber derives the next sequential confirmed number for the
// month of now from the confirmed numbers already in storage. Only numbers
// whose month/year tokens match the current month count; malformed numbers
// are skipped. The sequence therefore restarts at 001 on month rollover.
func NextConfirmedNumber(existing []string, now time.Time) string {
	month, year := monthYearTokens(now)

	maxNumber := 0
	for _, number := range existing {
		parts := strings.Split(number, "/")
		if len(parts) != 3 || parts[1] != month || parts[2] != year {
			continue
		}
		digits := stripNonDigits(parts[0])
		if digits == "" {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil && n > maxNumber {
			maxNumber = n
		}
	}

	return fmt.Sprintf("%03d/%s/%s", maxNumber+1, month, year)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PrefixForStatus maps a non-confirmed status to its number prefix.
func PrefixForStatus(status string) (string, error) {
	switch status {
	case entity.StatusProvisional:
		return entity.PrefixProvisional, nil
	case entity.StatusMilitary:
		return entity.PrefixMilitary, nil
	case entity.StatusCivil:
		return entity.PrefixCivil, nil
	}
	return "", entity.ErrInvalidTaskStatus
}
