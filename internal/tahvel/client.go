// Package tahvel is a read-only client for the Tahvel (hois_back) API.
// Authentication is an opaque session cookie the user copies from their
// browser; the client never refreshes or renews it.
package tahvel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the production Tahvel backend.
	DefaultBaseURL = "https://tahvel.edu.ee/hois_back"
	// DefaultLang is the language parameter sent on listing requests.
	DefaultLang = "ET"
	// DefaultPageSize is the page size used for paginated endpoints.
	DefaultPageSize = 50
)

// ErrUnauthorized is wrapped into errors for 401/403 responses so
// callers can suggest re-authenticating.
var ErrUnauthorized = errors.New("authentication failed: cookie may be expired or invalid")

// Options configures a Client. Zero-value fields fall back to the
// package defaults.
type Options struct {
	BaseURL  string
	Cookie   string
	Lang     string
	PageSize int
	Timeout  time.Duration
}

// Client is an authenticated Tahvel API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cookie     string
	lang       string
	pageSize   int
}

// NewClient creates a Tahvel client from the given options.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Lang == "" {
		opts.Lang = DefaultLang
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		cookie:     opts.Cookie,
		lang:       opts.Lang,
		pageSize:   opts.PageSize,
	}
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cookie", c.cookie)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tahvel API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("tahvel API error %d: %w", resp.StatusCode, ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tahvel API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding tahvel response: %w", err)
	}
	return nil
}

// GetPlannedDates fetches the planned lesson timestamps of a journal.
func (c *Client) GetPlannedDates(ctx context.Context, journalID int64) ([]string, error) {
	var info lessonInfoResponse
	path := fmt.Sprintf("/journals/%d/journalEntry/lessonInfo", journalID)
	if err := c.get(ctx, path, nil, &info); err != nil {
		return nil, fmt.Errorf("fetching planned dates: %w", err)
	}
	return info.LessonPlanDates, nil
}

// GetJournalEntries fetches all journal entries of a journal, following
// the content/last pagination until the final page.
func (c *Client) GetJournalEntries(ctx context.Context, journalID int64) ([]JournalEntry, error) {
	path := fmt.Sprintf("/journals/%d/journalEntry", journalID)

	var all []JournalEntry
	for page := 0; ; page++ {
		params := url.Values{
			"lang": {c.lang},
			"page": {strconv.Itoa(page)},
			"size": {strconv.Itoa(c.pageSize)},
		}
		var p entryPage
		if err := c.get(ctx, path, params, &p); err != nil {
			return nil, fmt.Errorf("fetching journal entries page %d: %w", page, err)
		}
		for _, raw := range p.Content {
			var entry JournalEntry
			if err := json.Unmarshal(raw, &entry); err != nil {
				// Journal entries are bulk user data; one bad record
				// must not fail the whole fetch.
				fmt.Fprintf(os.Stderr, "Warning: skipping malformed journal entry: %v\n", err)
				continue
			}
			all = append(all, entry)
		}
		if p.Last == nil || *p.Last {
			break
		}
	}
	return all, nil
}

// GetJournals fetches all of the caller's journals for a study year.
func (c *Client) GetJournals(ctx context.Context, studyYearID int64) ([]Journal, error) {
	var all []Journal
	for page := 0; ; page++ {
		params := url.Values{
			"lang":           {c.lang},
			"onlyMyJournals": {"true"},
			"page":           {strconv.Itoa(page)},
			"size":           {strconv.Itoa(c.pageSize)},
			"sort":           {"2,+5,+3,asc"},
			"studyYear":      {strconv.FormatInt(studyYearID, 10)},
		}
		var p journalPage
		if err := c.get(ctx, "/journals", params, &p); err != nil {
			return nil, fmt.Errorf("fetching journals page %d: %w", page, err)
		}
		all = append(all, p.Content...)
		if p.Last == nil || *p.Last {
			break
		}
	}
	return all, nil
}

// GetStudyYears fetches the available study years.
func (c *Client) GetStudyYears(ctx context.Context) ([]StudyYear, error) {
	var years []StudyYear
	if err := c.get(ctx, "/autocomplete/studyYears", nil, &years); err != nil {
		return nil, fmt.Errorf("fetching study years: %w", err)
	}
	return years, nil
}

// GetJournalDetails fetches the hour budget of a journal.
func (c *Client) GetJournalDetails(ctx context.Context, journalID int64) (*JournalDetails, error) {
	var details JournalDetails
	path := fmt.Sprintf("/journals/%d", journalID)
	if err := c.get(ctx, path, nil, &details); err != nil {
		return nil, fmt.Errorf("fetching journal details: %w", err)
	}
	return &details, nil
}

// GetEntryTypes fetches the known SISSEKANNE classifier codes.
func (c *Client) GetEntryTypes(ctx context.Context) ([]string, error) {
	params := url.Values{"mainClassCode": {"SISSEKANNE"}}
	var classifiers []classifier
	if err := c.get(ctx, "/autocomplete/classifiers", params, &classifiers); err != nil {
		return nil, fmt.Errorf("fetching entry types: %w", err)
	}
	codes := make([]string, 0, len(classifiers))
	for _, cl := range classifiers {
		codes = append(codes, cl.Code)
	}
	return codes, nil
}
