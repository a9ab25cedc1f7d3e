package receipt

import (
	"fmt"
	"time"
)

// FormatTime renders a minute count for display: "45m" under an hour,
// "2h 5m" otherwise. Callers must pass a non-negative value.
func FormatTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatDate renders a receipt date as MM/DD/YY.
func FormatDate(t time.Time) string {
	return t.Format("01/02/06")
}

// FormatClock renders the generation timestamp, e.g. "3:04 PM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
