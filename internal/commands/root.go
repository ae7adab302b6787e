package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"repoclone/internal/appConfig"
	"repoclone/internal/color"
	logger "repoclone/internal/log"
	"repoclone/internal/vcs"
	typex "repoclone/type"
)

// Set via -ldflags.
var version = "dev"

// Global flags.
var (
	configPath    string
	verbose       bool
	logFile       string
	backendName   string
	remoteName    string
	timeout       time.Duration
	colorOutput   typex.NullableBool
	existenceOnly bool
)

const (
	ExitConfiguration = 2
	ExitFailure       = 1
)

var rootCmd = &cobra.Command{
	Use:   "repoclone",
	Short: "Clone the repositories listed in a manifest",
	Long: `repoclone reads a manifest of repositories (name + remote URL) and makes sure each one
is cloned under the configured output folder. Repositories already present with the
expected remote are skipped, anything else at the target path is left untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.InitLogger(verbose, logFile); err != nil {
			return err
		}
		color.SetEnabled(colorOutput.Val(isTerminal(cmd.OutOrStdout())))
		logger.Log.Debugf("Running %s (backend %s, config %s)", cmd.CommandPath(), backendName, configPath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "repoclone %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", fmt.Sprintf("path to the config file (default %s in the working or home directory)", appConfig.DefaultConfigFileName))
	flags.BoolVar(&verbose, "verbose", false, "debug logging")
	flags.StringVar(&logFile, "log-file", logger.LogFileName, "path to the log file")
	flags.StringVar(&backendName, "backend", vcs.BackendGit, fmt.Sprintf("version control backend (%s or %s)", vcs.BackendGit, vcs.BackendGoGit))
	flags.StringVar(&remoteName, "remote", vcs.DefaultRemoteName, "name of the remote whose URL identifies a clone")
	flags.DurationVar(&timeout, "timeout", 0, "timeout for each git invocation (default 30s for queries, 10m for clones)")
	flags.Var(&colorOutput, "color", "colored output (default when writing to a terminal)")
	flags.Lookup("color").NoOptDefVal = "true"
	flags.BoolVar(&existenceOnly, "existence-only", false, "treat any existing directory as already cloned")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.FgRed("Error: %v", err))
		logger.Log.Errorf("%s: %v", rootCmd.Name(), err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	var configErr *appConfig.ConfigurationError
	if errors.As(err, &configErr) {
		return ExitConfiguration
	}
	return ExitFailure
}
