package cmd

import (
	"fmt"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all variable names in the env file",
	Long: `Prints every key on its own line, in the order they appear in the
file. When a key occurs more than once only its first occurrence is
listed.

Example:
  dotenvk keys`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := envfile.Load(envFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load env file: %v", err)
		}

		for _, key := range doc.Keys() {
			fmt.Println(key)
		}
		return nil
	},
}
