package cmd

import (
	"fmt"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	"github.com/durableprogramming/dotenvk/internal/ui"
	"github.com/spf13/cobra"
)

var unsetDryRun bool

func init() {
	unsetCmd.Flags().BoolVar(&unsetDryRun, "dry-run", false, "show the resulting change without writing the file")
}

// resetUnsetCommandState resets the unset command's global state for testing.
func resetUnsetCommandState() {
	unsetDryRun = false
}

var unsetCmd = &cobra.Command{
	Use:   "unset KEY...",
	Short: "Remove one or more variables from the env file",
	Long: `Removes the entry lines for the given keys. The lines disappear
entirely rather than being blanked; surrounding comments and blank lines
stay exactly where they were.

Examples:
  dotenvk unset OLD_FLAG
  dotenvk unset A B C --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting unset command")

		doc, err := envfile.Load(envFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load env file: %v", err)
		}
		before := doc.String()

		var removed, missing []string
		for _, key := range args {
			if doc.Unset(key) {
				removed = append(removed, key)
				Logger.Debugf("Removed %s", key)
			} else {
				missing = append(missing, key)
			}
		}

		if unsetDryRun {
			fmt.Print(ui.Diff(before, doc.String()))
			fmt.Println(ui.Muted.Sprint("dry run, nothing written"))
			return nil
		}

		if len(removed) > 0 {
			if err := envfile.Save(envFile, doc); err != nil {
				return Logger.ErrorfAndReturn("failed to save env file: %v", err)
			}
		}

		for _, key := range missing {
			fmt.Println(ui.Warning.Sprint("⚠") + " " + ui.Key.Sprint(key) + " was not present")
		}
		fmt.Println(ui.Success.Sprint("✓") + fmt.Sprintf(" Removed %d variable(s) from ", len(removed)) + ui.Path.Sprint(envFile))
		return nil
	},
}
