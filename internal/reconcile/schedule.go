// Package reconcile merges a journal's planned lesson schedule with its
// recorded journal entries into a per-date completeness view.
package reconcile

import (
	"fmt"
	"sort"
	"time"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"
)

// timestampLayouts are tried in order when parsing API timestamps.
// Planned dates usually carry a Z suffix; entry dates have been seen
// with and without fractional seconds and occasionally date-only.
var timestampLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses an ISO-8601 timestamp. The calendar date and
// time of day are later derived in the timestamp's own offset; no
// timezone conversion happens anywhere in this package.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", s)
}

// Schedule maps a calendar date (YYYY-MM-DD) to the planned lesson
// start times (HH:MM:SS) on that date, sorted ascending.
type Schedule map[string][]string

// Dates returns the schedule's dates in ascending order.
func (s Schedule) Dates() []string {
	dates := make([]string, 0, len(s))
	for date := range s {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// BucketPlanned groups raw planned lesson timestamps by calendar date.
// Planned dates come from the timetable and are expected to be well
// formed, so a malformed timestamp fails the whole call.
func BucketPlanned(raw []string) (Schedule, error) {
	schedule := Schedule{}
	for _, ts := range raw {
		t, err := parseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("malformed planned date: %w", err)
		}
		date := t.Format(dateFormat)
		schedule[date] = append(schedule[date], t.Format(timeFormat))
	}
	for _, times := range schedule {
		sort.Strings(times)
	}
	return schedule, nil
}
