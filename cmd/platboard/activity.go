// Activity command prints the workflow event feed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity feed",
	Long:  `Activity prints the most recent workflow events, newest first. The feed holds at most the 50 latest entries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "activity:", err)
			os.Exit(exitUserError)
		}

		entries, err := a.log.List()
		if err != nil {
			return fmt.Errorf("list activity: %w", err)
		}

		if flagJSON {
			return printJSON(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No activity yet")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s", e.Timestamp.Format("2006-01-02 15:04"), e.Title)
			if e.Detail != "" {
				fmt.Printf(": %s", e.Detail)
			}
			fmt.Println()
		}
		return nil
	},
}
