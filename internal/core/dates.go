package core

import (
	"fmt"
	"regexp"
	"time"
)

// CanonicalDateLayout is the calendar-date form stored in the data model
// (task schedules) and used for report bucketing.
const CanonicalDateLayout = "2006-01-02"

// DisplayDateLayout is the DD/MM/YYYY form dates take at the CLI boundary.
const DisplayDateLayout = "02/01/2006"

// Clock supplies the current time. Injected into the engine so tests can
// fix "now".
type Clock func() time.Time

var displayDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ConvertToISO converts a display-format date (DD/MM/YYYY, day and month
// optionally unpadded) to the canonical YYYY-MM-DD form. Strings that do not
// match the display format, or name an impossible calendar date, return
// ErrInvalidDate.
func ConvertToISO(dateStr string) (string, error) {
	m := displayDatePattern.FindStringSubmatch(dateStr)
	if m == nil {
		return "", fmt.Errorf("%w: %q is not DD/MM/YYYY", ErrInvalidDate, dateStr)
	}

	day, month, year := m[1], m[2], m[3]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}

	iso := fmt.Sprintf("%s-%s-%s", year, month, day)
	if _, err := time.Parse(CanonicalDateLayout, iso); err != nil {
		return "", fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, dateStr)
	}
	return iso, nil
}

// ConvertToDisplay converts a canonical YYYY-MM-DD date to DD/MM/YYYY.
func ConvertToDisplay(isoDate string) (string, error) {
	t, err := time.Parse(CanonicalDateLayout, isoDate)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, isoDate)
	}
	return t.Format(DisplayDateLayout), nil
}

// DateOf returns the canonical calendar date of a timestamp.
func DateOf(t time.Time) string {
	return t.Format(CanonicalDateLayout)
}
