package worklog

import (
	"fmt"
	"regexp"
	"time"
)

var durationPattern = regexp.MustCompile(`^(\d+)h (\d+)m (\d+)s$`)

// FormatDuration renders a duration as "{h}h {m}m {s}s" in whole seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// ParseDuration parses a "{h}h {m}m {s}s" string. Unparsable input returns
// ok=false; aggregation treats it as zero.
func ParseDuration(s string) (time.Duration, bool) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	var hours, minutes, seconds int64
	fmt.Sscanf(m[1], "%d", &hours)
	fmt.Sscanf(m[2], "%d", &minutes)
	fmt.Sscanf(m[3], "%d", &seconds)

	total := hours*3600 + minutes*60 + seconds
	return time.Duration(total) * time.Second, true
}

// SumDurations aggregates entry durations into one formatted string. Entries
// with unparsable durations contribute zero. The result is independent of
// input order; an empty input yields "0h 0m 0s". Pure, no I/O.
func SumDurations(entries []*Entry) string {
	var total time.Duration
	for _, e := range entries {
		if d, ok := ParseDuration(e.Duration()); ok {
			total += d
		}
	}
	return FormatDuration(total)
}

// SumDurationsWhere aggregates only entries matching the predicate.
func SumDurationsWhere(entries []*Entry, keep func(*Entry) bool) string {
	var total time.Duration
	for _, e := range entries {
		if keep != nil && !keep(e) {
			continue
		}
		if d, ok := ParseDuration(e.Duration()); ok {
			total += d
		}
	}
	return FormatDuration(total)
}
