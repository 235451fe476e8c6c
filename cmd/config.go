package cmd

import (
	"fmt"
	"strings"

	"github.com/aviadshiber/threads/internal/config"
	"github.com/aviadshiber/threads/internal/output"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage threads configuration",
		Long: `Get, set, and list configuration values stored in ~/.config/threads/config.yaml.

Valid keys:
` + describeKeys(),
	}

	configCmd.AddCommand(newConfigSetCmd())
	configCmd.AddCommand(newConfigGetCmd())
	configCmd.AddCommand(newConfigListCmd())

	return configCmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := cfg.Set(key, value); err != nil {
				return err
			}

			s := getIO()
			s.Printf("%s\n", s.Success(s.Bold(key)+"="+cfg.Display(key)))
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Print a configuration value. Unset keys print their default, marked
"(default)". The API key is masked unless --reveal is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			key := args[0]
			entry, ok, err := cfg.Lookup(key, reveal)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key %q is not set; run: threads config set %s <value>", key, key)
			}

			if handled, err := handleJSONOutput(cmd, entry); handled {
				return err
			}

			s := getIO()
			switch {
			case entry.Source == "default":
				s.Printf("%s %s\n", entry.Value, s.Muted("(default)"))
			case config.IsSensitive(key) && !reveal && s.IsTerminal():
				s.Printf("%s %s\n", entry.Value, s.Muted("(use --reveal to show)"))
			default:
				s.Printf("%s\n", entry.Value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print sensitive values unmasked")

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			entries := cfg.List()
			s := getIO()

			if jsonOutputRequested(cmd) {
				return output.PrintJSON(s.Out, entries)
			}

			if len(entries) == 0 {
				s.Printf("%s\n", s.Muted("No configuration set. Run: threads config set <key> <value>"))
				s.Printf("%s %s\n", s.Muted("Config file:"), cfg.FilePath())
				return nil
			}

			headers := []string{"KEY", "VALUE"}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Key, e.Value}
			}

			output.PrintTable(s.Out, headers, rows, s.IsTerminal())
			s.Printf("\n%s %s\n", s.Muted("Config file:"), cfg.FilePath())
			return nil
		},
	}
}

// describeKeys lists the known keys with their descriptions for help text.
func describeKeys() string {
	var b strings.Builder
	for _, key := range config.KnownKeyNames() {
		fmt.Fprintf(&b, "  %-10s %s\n", key, config.Describe(key))
	}
	return b.String()
}
