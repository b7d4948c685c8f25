package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tahvelcheck/internal/report"
)

var journalsStudyYear int64

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "List journals of a study year",
	Args:  cobra.NoArgs,
	RunE:  runJournals,
}

func init() {
	journalsCmd.Flags().Int64Var(&journalsStudyYear, "study-year", 0, "Study year ID (default: pick interactively)")
}

func runJournals(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	yearID := journalsStudyYear
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

	fmt.Println(report.JournalsTable(journals))
	return nil
}
