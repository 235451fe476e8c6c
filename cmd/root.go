// Package cmd defines the CLI commands for the threads tool.
package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aviadshiber/threads/internal/config"
	"github.com/aviadshiber/threads/internal/iostreams"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// versionInfo is set by main via SetVersionInfo.
	versionInfo struct {
		version string
		commit  string
		date    string
	}

	// Global flag values bound to viper.
	cfgAPIKey   string
	cfgEndpoint string
	cfgMock     bool
	cfgQuiet    bool
	cfgDebug    bool
	cfgJSON     string
	cfgJQ       string
	cfgTemplate string

	io *iostreams.IOStreams

	// newIOStreams is replaced in tests to capture output.
	newIOStreams = iostreams.New
)

// SetVersionInfo stores build metadata for the version command.
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

var rootCmd = &cobra.Command{
	Use:   "threads",
	Short: "Threads.io CLI - identify users and send events to Threads.io",
	Long: `threads is a command-line tool for the Threads.io ingestion API.

It identifies users, tracks events, records page views and removes users.
Responses can be printed as JSON, filtered with jq expressions, or rendered
with Go templates.

Configuration is stored in ~/.config/threads/config.yaml and can be overridden
with flags or environment variables (THREADS_API_KEY, THREADS_ENDPOINT,
THREADS_MOCK). Set THREADS_DEBUG=1 to log requests to stderr.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		io = newIOStreams()
		io.SetQuiet(viper.GetBool("quiet"))

		if jq, _ := cmd.Flags().GetString("jq"); jq != "" && !jsonOutputRequested(cmd) {
			return fmt.Errorf("`--jq` requires `--json`")
		}
		if tmpl, _ := cmd.Flags().GetString("template"); tmpl != "" && !jsonOutputRequested(cmd) {
			return fmt.Errorf("`--template` requires `--json`")
		}

		endpoint := viper.GetString("endpoint")
		if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			return fmt.Errorf("invalid endpoint %q; must start with http:// or https://", endpoint)
		}
		return nil
	},
}

func init() {
	// Load config file into global viper.
	if dir, err := config.Dir(); err == nil {
		viper.SetConfigFile(filepath.Join(dir, "config.yaml"))
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig() // Ignore error if file doesn't exist yet.
	}

	// Bind env vars before flag parsing.
	viper.SetEnvPrefix("THREADS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Persistent flags available to all subcommands.
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgAPIKey, "api-key", "", "Threads.io event key (env: THREADS_API_KEY)")
	pf.StringVar(&cfgEndpoint, "endpoint", "", "Ingestion API base URL (env: THREADS_ENDPOINT)")
	pf.BoolVar(&cfgMock, "mock", false, "Do not send requests; answer every call with success (env: THREADS_MOCK)")
	pf.BoolVarP(&cfgQuiet, "quiet", "q", false, "Suppress non-essential output (env: THREADS_QUIET)")
	pf.BoolVar(&cfgDebug, "debug", false, "Log requests and failures to stderr (env: THREADS_DEBUG)")
	pf.StringVar(&cfgJSON, "json", "", "Output JSON; optionally comma-separated field list")
	pf.StringVar(&cfgJQ, "jq", "", "Filter JSON output with a jq expression (requires --json)")
	pf.StringVar(&cfgTemplate, "template", "", "Format output with a Go template (requires --json)")

	// Allow --json to be used without a value (e.g., "threads version --json").
	pf.Lookup("json").NoOptDefVal = " "

	// Bind flags to viper keys so env vars and config file values also work.
	_ = viper.BindPFlag(config.KeyAPIKey, pf.Lookup("api-key"))
	_ = viper.BindPFlag(config.KeyEndpoint, pf.Lookup("endpoint"))
	_ = viper.BindPFlag(config.KeyMock, pf.Lookup("mock"))
	_ = viper.BindPFlag("quiet", pf.Lookup("quiet"))
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))

	// Register subcommands.
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// Execute runs the root command. Called from main.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error in red to stderr.
		s := getIO()
		fmt.Fprintln(s.ErrOut, s.Failure("Error: "+err.Error()))
		return err
	}
	return nil
}

// getIO returns the current IOStreams instance, initializing if needed.
func getIO() *iostreams.IOStreams {
	if io == nil {
		io = newIOStreams()
	}
	return io
}

// isDebug reports whether request logging is enabled via --debug or
// THREADS_DEBUG=1.
func isDebug() bool {
	return viper.GetBool("debug")
}

// jsonOutputRequested reports whether the --json flag was explicitly set.
func jsonOutputRequested(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("json")
}
