package reconcile_test

import (
	"reflect"
	"sort"
	"testing"

	"tahvelcheck/internal/reconcile"
	"tahvelcheck/internal/tahvel"
)

func TestComparePlannedWithMatchingEntries(t *testing.T) {
	schedule, err := reconcile.BucketPlanned([]string{
		"2024-01-10T08:00:00Z",
		"2024-01-10T09:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	entries := reconcile.ClassifyEntries([]tahvel.JournalEntry{
		{EntryDate: "2024-01-10T08:00:00Z", Lessons: 2, EntryType: "SISSEKANNE_T", Content: "Intro"},
	})

	results := reconcile.Compare(schedule, entries)
	c, ok := results["2024-01-10"]
	if !ok {
		t.Fatalf("no comparison for 2024-01-10, dates = %v", results.Dates())
	}

	if c.PlannedLessons != 2 {
		t.Errorf("PlannedLessons = %d, want 2", c.PlannedLessons)
	}
	if c.RegularLessons != 2 {
		t.Errorf("RegularLessons = %d, want 2", c.RegularLessons)
	}
	if !c.AllInserted {
		t.Error("AllInserted = false, want true")
	}
	if !c.HasJournalEntry {
		t.Error("HasJournalEntry = false, want true")
	}
	if c.Content != "Intro" {
		t.Errorf("Content = %q, want %q", c.Content, "Intro")
	}
	if !reflect.DeepEqual(c.Times, []string{"08:00:00", "09:00:00"}) {
		t.Errorf("Times = %v, want [08:00:00 09:00:00]", c.Times)
	}
}

func TestComparePlannedWithoutEntries(t *testing.T) {
	schedule, err := reconcile.BucketPlanned([]string{"2024-02-01T10:00:00Z"})
	if err != nil {
		t.Fatal(err)
	}

	results := reconcile.Compare(schedule, reconcile.EntryMap{})
	c := results["2024-02-01"]

	if c.PlannedLessons != 1 {
		t.Errorf("PlannedLessons = %d, want 1", c.PlannedLessons)
	}
	if c.EnteredLessons != 0 {
		t.Errorf("EnteredLessons = %d, want 0", c.EnteredLessons)
	}
	if c.AllInserted {
		t.Error("AllInserted = true, want false")
	}
	if c.HasJournalEntry {
		t.Error("HasJournalEntry = true, want false")
	}
	if c.Content != "N/A" {
		t.Errorf("Content = %q, want N/A", c.Content)
	}
	if len(c.TypeCounts) != 0 {
		t.Errorf("TypeCounts = %v, want empty", c.TypeCounts)
	}
}

func TestCompareEntriesWithoutPlan(t *testing.T) {
	entries := reconcile.ClassifyEntries([]tahvel.JournalEntry{
		{EntryDate: "2024-03-05T12:00:00Z", Lessons: 3, EntryType: "SISSEKANNE_I"},
	})

	results := reconcile.Compare(reconcile.Schedule{}, entries)
	c, ok := results["2024-03-05"]
	if !ok {
		t.Fatalf("no comparison for 2024-03-05, dates = %v", results.Dates())
	}

	if c.PlannedLessons != 0 {
		t.Errorf("PlannedLessons = %d, want 0", c.PlannedLessons)
	}
	if c.IndependentLessons != 3 {
		t.Errorf("IndependentLessons = %d, want 3", c.IndependentLessons)
	}
	if c.RegularLessons != 0 {
		t.Errorf("RegularLessons = %d, want 0", c.RegularLessons)
	}
	if !c.AllInserted {
		t.Error("AllInserted = false, want true (nothing was planned)")
	}
	if !c.HasJournalEntry {
		t.Error("HasJournalEntry = false, want true")
	}
	if c.Times == nil || len(c.Times) != 0 {
		t.Errorf("Times = %v, want empty non-nil slice", c.Times)
	}
}

func TestCompareOnlyRegularLessonsCount(t *testing.T) {
	// Two planned slots covered by one regular and three independent
	// lessons: independent entries never satisfy a planned slot.
	schedule, err := reconcile.BucketPlanned([]string{
		"2024-04-02T08:00:00Z",
		"2024-04-02T09:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	entries := reconcile.ClassifyEntries([]tahvel.JournalEntry{
		{EntryDate: "2024-04-02T08:00:00Z", Lessons: 1, EntryType: "SISSEKANNE_T"},
		{EntryDate: "2024-04-02T10:00:00Z", Lessons: 3, EntryType: "SISSEKANNE_I"},
	})

	c := reconcile.Compare(schedule, entries)["2024-04-02"]
	if c.EnteredLessons != 4 {
		t.Errorf("EnteredLessons = %d, want 4", c.EnteredLessons)
	}
	if c.AllInserted {
		t.Error("AllInserted = true, want false: 1 regular < 2 planned")
	}
}

func TestCompareUnionOfDates(t *testing.T) {
	schedule, err := reconcile.BucketPlanned([]string{
		"2024-05-06T08:00:00Z",
		"2024-05-07T08:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	entries := reconcile.ClassifyEntries([]tahvel.JournalEntry{
		{EntryDate: "2024-05-07T08:00:00Z", Lessons: 1, EntryType: "SISSEKANNE_T"},
		{EntryDate: "2024-05-08T08:00:00Z", Lessons: 1, EntryType: "SISSEKANNE_T"},
	})

	results := reconcile.Compare(schedule, entries)

	union := map[string]bool{}
	for date := range schedule {
		union[date] = true
	}
	for date := range entries {
		union[date] = true
	}
	var want []string
	for date := range union {
		want = append(want, date)
	}
	sort.Strings(want)

	if got := results.Dates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Dates() = %v, want union %v", got, want)
	}
	if len(results) != len(union) {
		t.Errorf("len(results) = %d, want %d (no duplicates)", len(results), len(union))
	}
}

func TestCompareDatesSorted(t *testing.T) {
	schedule, err := reconcile.BucketPlanned([]string{
		"2024-09-30T08:00:00Z",
		"2024-01-02T08:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	entries := reconcile.ClassifyEntries([]tahvel.JournalEntry{
		{EntryDate: "2024-05-15T08:00:00Z", Lessons: 1, EntryType: "SISSEKANNE_T"},
	})

	dates := reconcile.Compare(schedule, entries).Dates()
	if !sort.StringsAreSorted(dates) {
		t.Errorf("Dates() not sorted: %v", dates)
	}
	want := []string{"2024-01-02", "2024-05-15", "2024-09-30"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("Dates() = %v, want %v", dates, want)
	}
}

func TestCompareEmptyInputs(t *testing.T) {
	results := reconcile.Compare(reconcile.Schedule{}, reconcile.EntryMap{})
	if len(results) != 0 {
		t.Errorf("expected empty result, got %v", results)
	}
}

func TestCompareCarriesTypeCounts(t *testing.T) {
	schedule, err := reconcile.BucketPlanned([]string{"2024-06-03T08:00:00Z"})
	if err != nil {
		t.Fatal(err)
	}
	entries := reconcile.ClassifyEntries([]tahvel.JournalEntry{
		{EntryDate: "2024-06-03T08:00:00Z", Lessons: 1, EntryType: "SISSEKANNE_T"},
		{EntryDate: "2024-06-03T10:00:00Z", Lessons: 2, EntryType: "SISSEKANNE_E"},
	})

	c := reconcile.Compare(schedule, entries)["2024-06-03"]
	want := map[string]int{"SISSEKANNE_T": 1, "SISSEKANNE_E": 2}
	if !reflect.DeepEqual(c.TypeCounts, want) {
		t.Errorf("TypeCounts = %v, want %v", c.TypeCounts, want)
	}
}
