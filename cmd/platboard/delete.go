// Delete command removes a survey after explicit confirmation.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <survey-id>",
	Short: "Delete a survey",
	Long:  `Delete removes the survey permanently. Pass --yes to skip the confirmation prompt.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.requireSession(); err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitUserError)
		}

		if !deleteYes && !confirmDelete(args[0]) {
			fmt.Println("Aborted")
			return nil
		}

		err = a.workflow.Delete(args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitUserError)
		}
		if err != nil {
			return fmt.Errorf("delete survey: %w", err)
		}

		fmt.Printf("Deleted survey %s\n", args[0])
		return nil
	},
}

// confirmDelete prompts on stdin and reports whether the user answered yes.
func confirmDelete(id string) bool {
	fmt.Printf("Delete survey %s? [y/N] ", id)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}
