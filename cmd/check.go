package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tahvelcheck/internal/reconcile"
	"tahvelcheck/internal/report"
	"tahvelcheck/internal/tahvel"
)

var (
	checkJournalID int64
	checkStudyYear int64
	checkAll       bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare planned lessons with recorded journal entries",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int64VarP(&checkJournalID, "journal-id", "j", 0, "Journal ID to check (default: pick interactively)")
	checkCmd.Flags().Int64Var(&checkStudyYear, "study-year", 0, "Study year ID (default: pick interactively)")
	checkCmd.Flags().BoolVarP(&checkAll, "all", "a", false, "Process all journals of the study year")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if checkJournalID != 0 {
		if err := processJournal(ctx, client, checkJournalID); err != nil {
			printJournalError(checkJournalID, err)
			os.Exit(1)
		}
		return nil
	}

	yearID := checkStudyYear
	if yearID == 0 {
		yearID, err = selectStudyYear(ctx, client)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	journals, err := client.GetJournals(ctx, yearID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(journals) == 0 {
		fmt.Println("No journals found for the selected study year.")
		return nil
	}

	if checkAll {
		fmt.Printf("Processing all %d journals...\n", len(journals))
		successful := 0
		for i, j := range journals {
			fmt.Printf("Processing journal %d of %d: %s (ID: %d)\n", i+1, len(journals), j.NameET, j.ID)
			if err := processJournal(ctx, client, j.ID); err != nil {
				printJournalError(j.ID, err)
			} else {
				successful++
			}
			fmt.Println("\n" + strings.Repeat("-", 80) + "\n")
		}
		fmt.Printf("Successfully processed %d out of %d journals\n", successful, len(journals))
		return nil
	}

	fmt.Println(report.JournalsTable(journals))
	choice, err := promptSelect(os.Stdin, "Select a journal", len(journals))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	selected := journals[choice-1]
	fmt.Printf("Selected journal: %s\n", selected.NameET)

	if err := processJournal(ctx, client, selected.ID); err != nil {
		printJournalError(selected.ID, err)
		os.Exit(1)
	}
	return nil
}

// processJournal fetches, reconciles, and renders a single journal.
func processJournal(ctx context.Context, client *tahvel.Client, journalID int64) error {
	fmt.Println(report.JournalTitle(journalID))

	planned, err := client.GetPlannedDates(ctx, journalID)
	if err != nil {
		return err
	}
	fmt.Printf("Fetched %d planned lesson dates.\n", len(planned))

	entries, err := client.GetJournalEntries(ctx, journalID)
	if err != nil {
		return err
	}
	fmt.Printf("Fetched %d journal entries.\n", len(entries))

	schedule, err := reconcile.BucketPlanned(planned)
	if err != nil {
		return err
	}
	results := reconcile.Compare(schedule, reconcile.ClassifyEntries(entries))

	table, incomplete := report.ComparisonTable(results)
	fmt.Println(table)
	fmt.Println(report.Summary(len(results), incomplete))

	// The hour budget is informational; a failure here should not mark
	// the journal as failed.
	details, err := client.GetJournalDetails(ctx, journalID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not fetch journal details: %v\n", err)
		return nil
	}
	fmt.Println(report.CapacityHours(details))
	return nil
}

// selectStudyYear lists the study years and prompts for one.
func selectStudyYear(ctx context.Context, client *tahvel.Client) (int64, error) {
	years, err := client.GetStudyYears(ctx)
	if err != nil {
		return 0, err
	}
	if len(years) == 0 {
		return 0, errors.New("no study years found")
	}

	fmt.Println(report.StudyYearsTable(years))
	choice, err := promptSelect(os.Stdin, "Select a study year", len(years))
	if err != nil {
		return 0, err
	}
	selected := years[choice-1]
	fmt.Printf("Selected study year: %s\n", selected.NameET)
	return selected.ID, nil
}

func printJournalError(journalID int64, err error) {
	fmt.Fprintf(os.Stderr, "Error processing journal %d: %v\n", journalID, err)
}
