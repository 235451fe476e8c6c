package cmd

import (
	"github.com/aviadshiber/threads/client"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPageCmd())
}

func newPageCmd() *cobra.Command {
	var (
		properties string
		at         string
	)

	cmd := &cobra.Command{
		Use:     "page <user-id> <name>",
		Short:   "Record a page view for a user",
		Example: `  threads page user-42 "Welcome Page" --properties '{"referrer":"newsletter"}'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAt(at)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			userID, name := args[0], args[1]
			resp, err := c.Page(cmd.Context(), userID, name, jsonArg(properties), when)
			if err != nil {
				return err
			}
			return reportResponse(cmd, c, client.ActionPage, userID, resp)
		},
	}

	cmd.Flags().StringVar(&properties, "properties", "{}", "Page properties as a JSON object")
	cmd.Flags().StringVar(&at, "at", "", "When the page was viewed, RFC 3339 (default: now)")

	return cmd
}
