package tahvel

import "encoding/json"

// UnknownEntryType is the code assigned when an entry carries no
// resolvable type.
const UnknownEntryType = "UNKNOWN"

// EntryType is a SISSEKANNE classifier code. The API is inconsistent
// about its shape: some endpoints return a bare code string, others an
// object with a "code" field. UnmarshalJSON accepts both; anything else
// decodes to UnknownEntryType.
type EntryType string

func (t *EntryType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = EntryType(s)
		return nil
	}

	var obj struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Code != "" {
		*t = EntryType(obj.Code)
		return nil
	}

	*t = UnknownEntryType
	return nil
}

// Code returns the normalized code string, defaulting to
// UnknownEntryType when the field was absent entirely.
func (t EntryType) Code() string {
	if t == "" {
		return UnknownEntryType
	}
	return string(t)
}

// JournalEntry is a single recorded lesson from the journal entry
// endpoint. EntryDate may be empty for draft entries; Lessons is 0 when
// the field is absent.
type JournalEntry struct {
	ID        int64     `json:"id"`
	EntryDate string    `json:"entryDate"`
	Lessons   int       `json:"lessons"`
	Content   string    `json:"content"`
	EntryType EntryType `json:"entryType"`
}

// Journal is a class roster as listed by the journals endpoint.
type Journal struct {
	ID     int64  `json:"id"`
	NameET string `json:"nameEt"`
}

// StudyYear is one academic year from the autocomplete endpoint.
type StudyYear struct {
	ID     int64  `json:"id"`
	NameET string `json:"nameEt"`
}

// CapacityHours is the planned/used hour pair for one lesson capacity
// type (e.g. auditory vs. practical work).
type CapacityHours struct {
	Capacity     string `json:"capacity"`
	PlannedHours int    `json:"plannedHours"`
	UsedHours    int    `json:"usedHours"`
}

// LessonHours summarises the hour budget of a journal.
type LessonHours struct {
	TotalPlannedHours int             `json:"totalPlannedHours"`
	CapacityHours     []CapacityHours `json:"capacityHours"`
}

// JournalDetails is the subset of the journal detail response the tool
// displays.
type JournalDetails struct {
	LessonHours LessonHours `json:"lessonHours"`
}

// lessonInfoResponse wraps the planned lesson timestamps.
type lessonInfoResponse struct {
	LessonPlanDates []string `json:"lessonPlanDates"`
}

// classifier is one entry of the classifier autocomplete response.
type classifier struct {
	Code string `json:"code"`
}

// entryPage is one page of the paginated journal entry listing.
// Content stays raw so one malformed entry can be skipped without
// failing the page. Last is a pointer: a response without the field
// means the final page.
type entryPage struct {
	Content []json.RawMessage `json:"content"`
	Last    *bool             `json:"last"`
}

// journalPage is one page of the paginated journal listing.
type journalPage struct {
	Content []Journal `json:"content"`
	Last    *bool     `json:"last"`
}
