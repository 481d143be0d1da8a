package cmd

import (
	"fmt"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	kerrors "github.com/durableprogramming/dotenvk/internal/errors"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the value of a variable",
	Long: `Prints the value of a single variable to stdout, with quoting and
escaping already resolved. Exits nonzero when the key is absent.

Example:
  dotenvk get DATABASE_URL`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := envfile.Load(envFile)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load env file: %v", err)
		}

		value, ok := doc.Get(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, args[0])
		}
		fmt.Println(value)
		return nil
	},
}
