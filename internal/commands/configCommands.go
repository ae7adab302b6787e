package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"repoclone/internal/appConfig"
	"repoclone/internal/color"
	"repoclone/internal/ext"
)

var setOutputCmd = &cobra.Command{
	Use:   "set-output <dir>",
	Short: "Set the folder repositories are cloned into",
	Args:  cobra.ExactArgs(1),
	RunE:  runSession(setOutputFolder),
}

var setInputCmd = &cobra.Command{
	Use:   "set-input <file>",
	Short: "Set the manifest file listing the repositories",
	Args:  cobra.ExactArgs(1),
	RunE:  runSession(setInputFile),
}

var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Print the config file location and its settings",
	Args:  cobra.NoArgs,
	RunE:  runSession(showConfig),
}

func init() {
	rootCmd.AddCommand(setOutputCmd, setInputCmd, showConfigCmd)
}

func setOutputFolder(_ context.Context, s *session, args []string) error {
	if err := requireValue(appConfig.KeyOutputFolder, args[0]); err != nil {
		return err
	}
	return s.updateConfig(func(config *appConfig.AppConfig) {
		config.OutputFolder = args[0]
	})
}

func setInputFile(_ context.Context, s *session, args []string) error {
	if err := requireValue(appConfig.KeyInputJSONFile, args[0]); err != nil {
		return err
	}
	return s.updateConfig(func(config *appConfig.AppConfig) {
		config.InputJSONFile = args[0]
	})
}

// requireValue rejects blank settings; saving one would drop the key from the config file.
func requireValue(key string, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	return nil
}

func (s *session) updateConfig(change func(config *appConfig.AppConfig)) error {
	if _, err := s.store.Update(change); err != nil {
		return err
	}
	s.printf("%s", color.FgGreen("Configuration updated."))
	return nil
}

func showConfig(_ context.Context, s *session, _ []string) error {
	config, err := s.store.Load()
	if err != nil {
		return err
	}
	s.printf("Config file: %s", color.FgCyan("%s", ext.ReplaceHomeDirWithTilde(s.store.Path)))
	s.printf("%s: %s", appConfig.KeyOutputFolder, settingOrUnset(config.OutputFolder))
	s.printf("%s: %s", appConfig.KeyInputJSONFile, settingOrUnset(config.InputJSONFile))
	return nil
}

func settingOrUnset(value string) string {
	if value == "" {
		return color.FgYellow("<not set>")
	}
	return color.FgCyan("%s", value)
}
