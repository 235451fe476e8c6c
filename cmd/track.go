package cmd

import (
	"github.com/aviadshiber/threads/client"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTrackCmd())
}

func newTrackCmd() *cobra.Command {
	var (
		properties string
		at         string
	)

	cmd := &cobra.Command{
		Use:   "track <user-id> <event>",
		Short: "Track an event for a user",
		Example: `  # Track a sign-up
  threads track user-42 "Signed Up" --properties '{"plan":"pro"}'

  # Show only the success flag as JSON
  threads track user-42 Connected --json success`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseAt(at)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			userID, event := args[0], args[1]
			resp, err := c.Track(cmd.Context(), userID, event, when, jsonArg(properties))
			if err != nil {
				return err
			}
			return reportResponse(cmd, c, client.ActionTrack, userID, resp)
		},
	}

	cmd.Flags().StringVar(&properties, "properties", "{}", "Event properties as a JSON object")
	cmd.Flags().StringVar(&at, "at", "", "When the event happened, RFC 3339 (default: now)")

	return cmd
}
