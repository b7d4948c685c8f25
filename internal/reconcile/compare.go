package reconcile

import "sort"

// Comparison is the merged per-date view of planned slots and recorded
// entries.
type Comparison struct {
	PlannedLessons     int
	EnteredLessons     int
	RegularLessons     int
	IndependentLessons int
	OtherLessons       int
	Content            string
	// Times are the planned start times of the date, sorted ascending;
	// empty for dates that only have journal entries.
	Times      []string
	TypeCounts map[string]int
	// AllInserted reports whether the date's planned slots are covered
	// by regular lessons. Independent and other entry types do not
	// satisfy a planned slot.
	AllInserted     bool
	HasJournalEntry bool
}

// ComparisonMap maps a calendar date (YYYY-MM-DD) to its comparison.
type ComparisonMap map[string]Comparison

// Dates returns the map's dates in ascending order.
func (m ComparisonMap) Dates() []string {
	dates := make([]string, 0, len(m))
	for date := range m {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Compare merges a planned schedule with classified journal entries.
// The result covers the union of both date sets: planned dates carry
// their entry aggregates when present, and dates with only journal
// entries are included with zero planned slots and count as complete,
// since nothing was scheduled for them.
func Compare(planned Schedule, entries EntryMap) ComparisonMap {
	results := ComparisonMap{}

	for date, times := range planned {
		c := Comparison{
			PlannedLessons: len(times),
			Content:        missingContent,
			Times:          times,
			TypeCounts:     map[string]int{},
		}
		if day, ok := entries[date]; ok {
			c.EnteredLessons = day.TotalLessons
			c.RegularLessons = day.RegularLessons
			c.IndependentLessons = day.IndependentLessons
			c.OtherLessons = day.OtherLessons
			c.Content = day.Content
			c.TypeCounts = day.TypeCounts
			c.HasJournalEntry = true
		}
		c.AllInserted = c.RegularLessons >= c.PlannedLessons
		results[date] = c
	}

	for date, day := range entries {
		if _, ok := results[date]; ok {
			continue
		}
		results[date] = Comparison{
			EnteredLessons:     day.TotalLessons,
			RegularLessons:     day.RegularLessons,
			IndependentLessons: day.IndependentLessons,
			OtherLessons:       day.OtherLessons,
			Content:            day.Content,
			Times:              []string{},
			TypeCounts:         day.TypeCounts,
			AllInserted:        true,
			HasJournalEntry:    true,
		}
	}

	return results
}
