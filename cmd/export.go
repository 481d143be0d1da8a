package cmd

import (
	"fmt"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	"github.com/durableprogramming/dotenvk/internal/export"
	"github.com/durableprogramming/dotenvk/internal/ui"
	"github.com/spf13/cobra"
)

var exportFormat string

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatBash, "output format: bash or json")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportFormat = export.FormatBash
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the env file as bash export statements or JSON",
	Long: `Renders the effective key/value mapping without modifying the file.

Bash output produces one shell-escaped export statement per variable and
is meant to be eval'd:

  eval "$(dotenvk export)"

JSON output is a single object with keys in file order:

  dotenvk export --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Debugf("Exporting %s as %s", envFile, exportFormat)

		doc, err := envfile.Load(envFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load env file: %v", err)
		}

		out, err := export.Render(exportFormat, doc.Pairs())
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}
		if out != "" {
			fmt.Print(ui.EnsureNewline(out))
		}
		return nil
	},
}
