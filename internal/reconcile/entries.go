package reconcile

import (
	"fmt"
	"os"
	"sort"

	"tahvelcheck/internal/tahvel"
)

const (
	// TypeRegular counts toward fulfilling a planned slot.
	TypeRegular = "SISSEKANNE_T"
	// TypeIndependent is self-study; recorded but never fulfilling.
	TypeIndependent = "SISSEKANNE_I"
)

const (
	maxContentRunes  = 40
	truncatedContent = 37
	missingContent   = "N/A"
)

// DayEntries aggregates all journal entries recorded on one date.
type DayEntries struct {
	Entries            []tahvel.JournalEntry
	TotalLessons       int
	RegularLessons     int
	IndependentLessons int
	OtherLessons       int
	// Content is the (truncated) content of the first entry seen for
	// the date; later entries never overwrite it.
	Content string
	// TypeCounts maps each entry type code to its summed lesson count.
	TypeCounts map[string]int
}

// EntryMap maps a calendar date (YYYY-MM-DD) to its aggregate.
type EntryMap map[string]*DayEntries

// Dates returns the map's dates in ascending order.
func (m EntryMap) Dates() []string {
	dates := make([]string, 0, len(m))
	for date := range m {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// ClassifyEntries groups journal entries by calendar date and entry
// type. Entries without a date are skipped silently; entries whose date
// cannot be parsed are skipped with a warning. Journal entries are
// user-entered bulk data, so a bad record must not abort the run — this
// is deliberately laxer than BucketPlanned.
func ClassifyEntries(entries []tahvel.JournalEntry) EntryMap {
	m := EntryMap{}
	for _, e := range entries {
		if e.EntryDate == "" {
			continue
		}
		t, err := parseTimestamp(e.EntryDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping journal entry with bad date: %v\n", err)
			continue
		}
		date := t.Format(dateFormat)

		day := m[date]
		if day == nil {
			day = &DayEntries{
				Content:    truncateContent(e.Content),
				TypeCounts: map[string]int{},
			}
			m[date] = day
		}

		day.Entries = append(day.Entries, e)
		day.TotalLessons += e.Lessons

		code := e.EntryType.Code()
		switch code {
		case TypeRegular:
			day.RegularLessons += e.Lessons
		case TypeIndependent:
			day.IndependentLessons += e.Lessons
		default:
			day.OtherLessons += e.Lessons
		}
		day.TypeCounts[code] += e.Lessons
	}
	return m
}

// truncateContent shortens long content to a display snippet and
// substitutes a marker for absent content. Counted in runes: Estonian
// content regularly contains õäöü.
func truncateContent(content string) string {
	if content == "" {
		return missingContent
	}
	runes := []rune(content)
	if len(runes) > maxContentRunes {
		return string(runes[:truncatedContent]) + "..."
	}
	return content
}
