package cmd

import (
	"os"

	"github.com/durableprogramming/dotenvk/internal/configs"
	logger "github.com/durableprogramming/dotenvk/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	envFile string
	verbose bool
	debug   bool
	Logger  logger.Logger
	cfg     configs.Config

	rootCmd = &cobra.Command{
		Use:   "dotenvk",
		Short: "Edit .env files without destroying their formatting",
		Long: `dotenvk edits .env files in place while preserving comments, blank
lines, key order, and quoting of untouched entries byte for byte.

It can also generate cryptographically secure random values for selected
keys, list keys, and export the file as bash statements or JSON.

Examples:
  dotenvk set DATABASE_URL=postgres://localhost/dev
  dotenvk unset OLD_FLAG
  dotenvk randomize SECRET_KEY_BASE --length 64 --numeric --symbol
  dotenvk export --format json
  dotenvk -f .env.production keys`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{Verbose: verbose, Debug: debug}
			Logger.Debugf("Initializing dotenvk with verbose=%t, debug=%t", verbose, debug)

			wd, err := os.Getwd()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to get working directory: %v", err)
			}
			cfg, err = configs.Load(wd)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
			}
			if !cmd.Flags().Changed("file") {
				envFile = cfg.Defaults.File
			}
			Logger.Debugf("Using env file: %s", envFile)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "file", "f", ".env", "path to the env file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(randomizeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	envFile = ".env"
	verbose = false
	debug = false
	resetSetCommandState()
	resetUnsetCommandState()
	resetExportCommandState()
	resetRandomizeCommandState()
	resetFlagState(rootCmd)
}

// resetFlagState clears cobra's flag-was-passed bookkeeping, which
// otherwise persists across Execute calls and defeats the
// flags-over-config fallback logic.
func resetFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	c.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, sub := range c.Commands() {
		resetFlagState(sub)
	}
}
