package reconcile_test

import (
	"reflect"
	"testing"

	"tahvelcheck/internal/reconcile"
)

func TestBucketPlannedGroupsByDate(t *testing.T) {
	raw := []string{
		"2024-01-10T09:00:00Z",
		"2024-01-10T08:00:00Z",
		"2024-01-11T10:15:00Z",
	}

	schedule, err := reconcile.BucketPlanned(raw)
	if err != nil {
		t.Fatalf("BucketPlanned: %v", err)
	}

	if got := schedule.Dates(); !reflect.DeepEqual(got, []string{"2024-01-10", "2024-01-11"}) {
		t.Errorf("Dates() = %v, want [2024-01-10 2024-01-11]", got)
	}
	if got := schedule["2024-01-10"]; !reflect.DeepEqual(got, []string{"08:00:00", "09:00:00"}) {
		t.Errorf("times for 2024-01-10 = %v, want sorted [08:00:00 09:00:00]", got)
	}
	if got := schedule["2024-01-11"]; !reflect.DeepEqual(got, []string{"10:15:00"}) {
		t.Errorf("times for 2024-01-11 = %v, want [10:15:00]", got)
	}
}

func TestBucketPlannedAcceptsTimestampVariants(t *testing.T) {
	tests := []struct {
		raw      string
		wantDate string
		wantTime string
	}{
		{"2024-01-10T08:00:00Z", "2024-01-10", "08:00:00"},
		{"2024-01-10T08:00:00+02:00", "2024-01-10", "08:00:00"},
		{"2024-01-10T08:00:00", "2024-01-10", "08:00:00"},
		{"2024-01-10", "2024-01-10", "00:00:00"},
		// The date is derived in the encoded offset, never converted:
		// 23:30 +02:00 stays on the 10th even though it is the 9th in UTC.
		{"2024-01-10T23:30:00+02:00", "2024-01-10", "23:30:00"},
	}
	for _, tt := range tests {
		schedule, err := reconcile.BucketPlanned([]string{tt.raw})
		if err != nil {
			t.Errorf("BucketPlanned(%q): %v", tt.raw, err)
			continue
		}
		times, ok := schedule[tt.wantDate]
		if !ok {
			t.Errorf("BucketPlanned(%q): date %s missing, got %v", tt.raw, tt.wantDate, schedule.Dates())
			continue
		}
		if len(times) != 1 || times[0] != tt.wantTime {
			t.Errorf("BucketPlanned(%q) times = %v, want [%s]", tt.raw, times, tt.wantTime)
		}
	}
}

func TestBucketPlannedMalformedTimestamp(t *testing.T) {
	_, err := reconcile.BucketPlanned([]string{"2024-01-10T08:00:00Z", "not-a-date"})
	if err == nil {
		t.Fatal("expected error for malformed timestamp, got nil")
	}
}

func TestBucketPlannedEmptyInput(t *testing.T) {
	schedule, err := reconcile.BucketPlanned(nil)
	if err != nil {
		t.Fatalf("BucketPlanned(nil): %v", err)
	}
	if len(schedule) != 0 {
		t.Errorf("expected empty schedule, got %v", schedule)
	}
}

func TestBucketPlannedDeterministic(t *testing.T) {
	raw := []string{
		"2024-03-01T12:00:00Z",
		"2024-02-29T08:00:00Z",
		"2024-03-01T09:00:00Z",
	}
	first, err := reconcile.BucketPlanned(raw)
	if err != nil {
		t.Fatal(err)
	}
	second, err := reconcile.BucketPlanned(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated bucketing differs:\nfirst  = %v\nsecond = %v", first, second)
	}
}
