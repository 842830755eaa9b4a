package trx

import (
	"fmt"
	"strings"
	"time"

	"trx-reporter/internal/results"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

// FormatDuration renders milliseconds as HH:MM:SS.mmm. Hours are not capped.
func FormatDuration(ms float64) string {
	total := int64(ms)
	if total < 0 {
		total = 0
	}
	hours := total / 3_600_000
	minutes := total / 60_000 % 60
	seconds := total / 1000 % 60
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// FormatTime renders epoch milliseconds as an ISO-8601 UTC instant with millisecond precision.
func FormatTime(ms float64) string {
	return time.UnixMilli(int64(ms)).UTC().Format(isoLayout)
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func joinMessages(errs []results.Error) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "\n")
}

func firstStartTime(cases []results.Case) float64 {
	if len(cases) == 0 {
		return 0
	}
	return cases[0].Diagnostic().StartTime
}
