package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tahvelcheck/internal/report"
)

var entryTypesCmd = &cobra.Command{
	Use:   "entrytypes",
	Short: "List journal entry type codes known to Tahvel",
	Args:  cobra.NoArgs,
	RunE:  runEntryTypes,
}

func runEntryTypes(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	codes, err := client.GetEntryTypes(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Fetched %d entry codes.\n", len(codes))
	fmt.Println(report.EntryTypesList(codes))
	return nil
}
