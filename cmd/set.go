package cmd

import (
	"fmt"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	"github.com/durableprogramming/dotenvk/internal/ui"
	"github.com/durableprogramming/dotenvk/internal/utils"
	"github.com/spf13/cobra"
)

var (
	setPrompt bool
	setDryRun bool
)

func init() {
	setCmd.Flags().BoolVar(&setPrompt, "prompt", false, "prompt for each value without echoing (arguments are keys)")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "show the resulting change without writing the file")
}

// resetSetCommandState resets the set command's global state for testing.
func resetSetCommandState() {
	setPrompt = false
	setDryRun = false
}

var setCmd = &cobra.Command{
	Use:   "set KEY=VALUE...",
	Short: "Set one or more variables in the env file",
	Long: `Sets variables in the env file, creating it when missing.

Existing entries are updated in place: the line keeps its position and any
trailing comment, and every other line of the file is written back byte
for byte. New keys are appended at the end.

With --prompt the arguments are plain keys and each value is read from
the terminal without echoing, so secrets stay out of shell history.

Examples:
  dotenvk set DATABASE_URL=postgres://localhost/dev DEBUG=true
  dotenvk set --prompt API_TOKEN
  dotenvk set DEBUG=false --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting set command")

		doc, err := envfile.Load(envFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load env file: %v", err)
		}
		before := doc.String()

		if setPrompt {
			for _, key := range args {
				value, err := utils.ReadSecret("Value for " + key + ": ")
				if err != nil {
					return Logger.ErrorfAndReturn("failed to read value for %s: %v", key, err)
				}
				if err := doc.Set(key, value); err != nil {
					return Logger.ErrorfAndReturn("failed to set %s: %v", key, err)
				}
				Logger.Debugf("Set %s from prompt", key)
			}
		} else {
			for _, arg := range args {
				key, value, err := envfile.SplitPair(arg)
				if err != nil {
					return Logger.ErrorfAndReturn("failed to parse argument: %v", err)
				}
				if err := doc.Set(key, value); err != nil {
					return Logger.ErrorfAndReturn("failed to set %s: %v", key, err)
				}
				Logger.Debugf("Set %s", key)
			}
		}

		if setDryRun {
			fmt.Print(ui.Diff(before, doc.String()))
			fmt.Println(ui.Muted.Sprint("dry run, nothing written"))
			return nil
		}

		if err := envfile.Save(envFile, doc); err != nil {
			return Logger.ErrorfAndReturn("failed to save env file: %v", err)
		}
		Logger.Infof("Set %d variable(s)", len(args))

		fmt.Println(ui.Success.Sprint("✓") + fmt.Sprintf(" Set %d variable(s) in ", len(args)) + ui.Path.Sprint(envFile))
		return nil
	},
}
