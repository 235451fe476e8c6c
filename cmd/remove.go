package cmd

import (
	"github.com/aviadshiber/threads/client"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:     "remove <user-id>",
		Short:   "Remove a user from Threads.io",
		Example: `  threads remove user-42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAt(at)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			userID := args[0]
			resp, err := c.Remove(cmd.Context(), userID, when)
			if err != nil {
				return err
			}
			return reportResponse(cmd, c, client.ActionRemove, userID, resp)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "When the removal was requested, RFC 3339 (default: now)")

	return cmd
}
