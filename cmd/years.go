package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tahvelcheck/internal/report"
)

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List available study years",
	Args:  cobra.NoArgs,
	RunE:  runYears,
}

func runYears(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	years, err := client.GetStudyYears(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(years) == 0 {
		fmt.Println("No study years found.")
		return nil
	}

	fmt.Println(report.StudyYearsTable(years))
	return nil
}
