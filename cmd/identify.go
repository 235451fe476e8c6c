package cmd

import (
	"github.com/aviadshiber/threads/client"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newIdentifyCmd())
}

func newIdentifyCmd() *cobra.Command {
	var (
		traits string
		at     string
	)

	cmd := &cobra.Command{
		Use:   "identify <user-id>",
		Short: "Identify a user and record their traits",
		Long: `Identify a user in Threads.io. Traits are given as a JSON object (or array)
and replace what Threads.io knows about the user.`,
		Example: `  # Identify a user now
  threads identify user-42 --traits '{"name":"Ritchie Blackmore","plan":"pro"}'

  # Identify with an explicit timestamp
  threads identify user-42 --traits '{"plan":"free"}' --at 2016-03-01T09:30:00Z

  # Try it without credentials
  threads identify user-42 --mock`,
		Args: cobra.ExactArgs(1),
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
			resp, err := c.Identify(cmd.Context(), userID, when, jsonArg(traits))
			if err != nil {
				return err
			}
			return reportResponse(cmd, c, client.ActionIdentify, userID, resp)
		},
	}

	cmd.Flags().StringVar(&traits, "traits", "{}", "User traits as a JSON object")
	cmd.Flags().StringVar(&at, "at", "", "When the traits were observed, RFC 3339 (default: now)")

	return cmd
}
