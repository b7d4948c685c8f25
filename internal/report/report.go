// Package report renders reconciliation results and API listings for
// the console.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tahvelcheck/internal/reconcile"
	"tahvelcheck/internal/tahvel"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73D216")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3465A4"))
	tableTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D216")).Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3465A4")).Bold(true)
	completeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D216")).Bold(true)
	incompleteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	summaryStyle     = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#73D216"))
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#06989A")).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// JournalTitle renders the header panel for one journal's report.
func JournalTitle(journalID int64) string {
	return titleStyle.Render(fmt.Sprintf("Tahvel Lesson Completion Checker – Journal ID: %d", journalID))
}

// ComparisonTable renders the per-date comparison and returns it along
// with the number of incomplete dates.
func ComparisonTable(results reconcile.ComparisonMap) (string, int) {
	headers := []string{"Date", "Content", "Planned", "Entered", "Regular", "Complete"}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}

	incomplete := 0
	rows := make([][]string, 0, len(results))
	statuses := make([]bool, 0, len(results))
	for _, date := range results.Dates() {
		c := results[date]
		if !c.AllInserted {
			incomplete++
		}
		rows = append(rows, []string{
			date,
			c.Content,
			strconv.Itoa(c.PlannedLessons),
			strconv.Itoa(c.EnteredLessons),
			strconv.Itoa(c.RegularLessons),
			"", // status symbol appended after alignment
		})
		statuses = append(statuses, c.AllInserted)
	}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) == 0 {
		return mutedStyle.Render("No dates found."), 0
	}

	var b strings.Builder
	b.WriteString(tableTitleStyle.Render("Lesson Entries Comparison"))
	b.WriteByte('\n')
	b.WriteString(tableHeaderStyle.Render(lines[0]))
	for i, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(line)
		b.WriteByte(' ')
		if statuses[i] {
			b.WriteString(completeStyle.Render("✓"))
		} else {
			b.WriteString(incompleteStyle.Render("✗"))
		}
	}
	return b.String(), incomplete
}

// Summary renders the closing statistics panel for one journal.
func Summary(total, incomplete int) string {
	complete := total - incomplete
	rate := "N/A"
	if total > 0 {
		rate = fmt.Sprintf("%.1f%%", float64(complete)/float64(total)*100)
	}

	var b strings.Builder
	b.WriteString(summaryLabelStyle.Render("Summary"))
	fmt.Fprintf(&b, "\nTotal Dates:      %d", total)
	fmt.Fprintf(&b, "\nComplete Dates:   %s", completeStyle.Render(strconv.Itoa(complete)))
	fmt.Fprintf(&b, "\nIncomplete Dates: %s", incompleteStyle.Render(strconv.Itoa(incomplete)))
	fmt.Fprintf(&b, "\nCompletion Rate:  %s", rate)
	return summaryStyle.Render(b.String())
}

// StudyYearsTable renders the numbered study year listing.
func StudyYearsTable(years []tahvel.StudyYear) string {
	headers := []string{"Option", "Year", "ID"}
	rows := make([][]string, 0, len(years))
	for i, y := range years {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			y.NameET,
			strconv.FormatInt(y.ID, 10),
		})
	}
	return listing("Available Study Years", headers, rows, map[int]bool{0: true, 2: true})
}

// JournalsTable renders the numbered journal listing.
func JournalsTable(journals []tahvel.Journal) string {
	headers := []string{"Option", "Name", "ID"}
	rows := make([][]string, 0, len(journals))
	for i, j := range journals {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			j.NameET,
			strconv.FormatInt(j.ID, 10),
		})
	}
	return listing("Available Journals", headers, rows, map[int]bool{0: true, 2: true})
}

// EntryTypesList renders the classifier codes, one per line.
func EntryTypesList(codes []string) string {
	var b strings.Builder
	b.WriteString(tableTitleStyle.Render("Entry Types"))
	for _, code := range codes {
		b.WriteByte('\n')
		b.WriteString(code)
	}
	return b.String()
}

// CapacityHours renders the journal's hour budget by capacity.
func CapacityHours(details *tahvel.JournalDetails) string {
	headers := []string{"Capacity", "Planned", "Used"}
	caps := details.LessonHours.CapacityHours
	sorted := make([]tahvel.CapacityHours, len(caps))
	copy(sorted, caps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Capacity < sorted[j].Capacity })

	rows := make([][]string, 0, len(sorted))
	for _, c := range sorted {
		rows = append(rows, []string{
			c.Capacity,
			strconv.Itoa(c.PlannedHours),
			strconv.Itoa(c.UsedHours),
		})
	}
	title := fmt.Sprintf("Lesson Hours (total planned: %d)", details.LessonHours.TotalPlannedHours)
	return listing(title, headers, rows, map[int]bool{1: true, 2: true})
}

func listing(title string, headers []string, rows [][]string, rightAlign map[int]bool) string {
	lines := formatTable(headers, rows, rightAlign)
	var b strings.Builder
	b.WriteString(tableTitleStyle.Render(title))
	for i, line := range lines {
		b.WriteByte('\n')
		if i == 0 {
			b.WriteString(tableHeaderStyle.Render(line))
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}
