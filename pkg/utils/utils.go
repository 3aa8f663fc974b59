package utils

import (
	"fmt"
	"strings"
	"time"
)

// MonthDiff returns the number of whole calendar months elapsed from `from`
// to `to`. The partial final month is not counted: if the day of month of
// `to` is before that of `from`, the count is floored. A `from` in the
// future yields a zero or negative value; callers clamp as needed.
// Both dates are taken in their stored reference frame, no zone conversion.
func MonthDiff(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}

// GenerateReceiptNumber derives a display receipt code from a resident id
// and a timestamp: "RCPT-" + last 6 chars of the id + millis. Collisions
// within the same millisecond are acceptable; this is never a storage key.
func GenerateReceiptNumber(residentID string, ts time.Time) string {
	id := strings.ReplaceAll(residentID, "-", "")
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return fmt.Sprintf("RCPT-%s-%d", id, ts.UnixMilli())
}
