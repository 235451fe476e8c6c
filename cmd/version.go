package cmd

import (
	"github.com/aviadshiber/threads/client"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of threads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := map[string]any{
				"version": versionInfo.version,
				"commit":  versionInfo.commit,
				"date":    versionInfo.date,
				"client":  client.Version,
			}
			if handled, err := handleJSONOutput(cmd, data); handled {
				return err
			}

			s := getIO()
			s.Printf("threads version %s (commit: %s, built: %s, client: %s)\n",
				versionInfo.version, versionInfo.commit, versionInfo.date, client.Version)
			return nil
		},
	}
}
