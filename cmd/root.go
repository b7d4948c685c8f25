package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tahvelcheck/internal/config"
	"tahvelcheck/internal/tahvel"
)

var (
	cookieFlag string
	saveCookie bool
)

var rootCmd = &cobra.Command{
	Use:   "tahvelcheck",
	Short: "Check Tahvel journal entries against planned lessons",
	Long: `tahvelcheck compares a journal's planned lesson schedule with the
journal entries actually recorded in Tahvel and reports, per date,
whether all planned lessons have been entered.

Authentication uses the session cookie from a logged-in Tahvel browser
session; pass it with --cookie and add --save-cookie to persist it in
~/.tahvelcheck/ for future runs.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cookieFlag, "cookie", "c", "", "Authentication cookie for Tahvel (default: saved cookie)")
	rootCmd.PersistentFlags().BoolVarP(&saveCookie, "save-cookie", "s", false, "Save the provided cookie for future use")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(yearsCmd)
	rootCmd.AddCommand(journalsCmd)
	rootCmd.AddCommand(entryTypesCmd)
}

// resolveCookie returns the cookie from the flag or the saved file,
// persisting the flag value when --save-cookie is set.
func resolveCookie() (string, error) {
	base, err := tahvel.BaseDir()
	if err != nil {
		return "", err
	}

	if cookieFlag != "" {
		if saveCookie {
			if err := tahvel.SaveCookie(base, cookieFlag); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save cookie: %v\n", err)
			} else {
				fmt.Println("Cookie saved for future use.")
			}
		}
		return cookieFlag, nil
	}

	cookie, err := tahvel.LoadCookie(base)
	if err != nil {
		return "", err
	}
	if cookie == "" {
		return "", fmt.Errorf("no cookie provided and no saved cookie found; pass one with --cookie (add --save-cookie to persist it)")
	}
	return cookie, nil
}

// newClient builds an authenticated Tahvel client from the config file
// and the resolved cookie.
func newClient() (*tahvel.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cookie, err := resolveCookie()
	if err != nil {
		return nil, err
	}
	return tahvel.NewClient(tahvel.Options{
		BaseURL:  cfg.BaseURL,
		Cookie:   cookie,
		Lang:     cfg.Lang,
		PageSize: cfg.PageSize,
		Timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
	}), nil
}
