package cmd

import (
	"strings"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	"github.com/durableprogramming/dotenvk/internal/secret"
	"github.com/durableprogramming/dotenvk/internal/ui"
	"github.com/spf13/cobra"
)

var (
	randomizeLength  int
	randomizeNumeric bool
	randomizeSymbol  bool
	randomizeXKCD    bool
	randomizeDryRun  bool
)

func init() {
	randomizeCmd.Flags().IntVarP(&randomizeLength, "length", "l", secret.DefaultLength, "length of each generated value")
	randomizeCmd.Flags().BoolVar(&randomizeNumeric, "numeric", false, "include digits in generated values")
	randomizeCmd.Flags().BoolVar(&randomizeSymbol, "symbol", false, "include symbols in generated values")
	randomizeCmd.Flags().BoolVar(&randomizeXKCD, "xkcd", false, "generate passphrases with xkcdpass instead")
	randomizeCmd.Flags().BoolVar(&randomizeDryRun, "dry-run", false, "show the resulting change without writing the file")
}

// resetRandomizeCommandState resets the randomize command's global state for testing.
func resetRandomizeCommandState() {
	randomizeLength = secret.DefaultLength
	randomizeNumeric = false
	randomizeSymbol = false
	randomizeXKCD = false
	randomizeDryRun = false
}

var randomizeCmd = &cobra.Command{
	Use:   "randomize KEY...",
	Short: "Assign fresh random values to the given keys",
	Long: `Assigns a new cryptographically random value to each key, creating
entries for keys not yet present. Values are letters only by default;
--numeric and --symbol widen the alphabet.

With --xkcd each value is a passphrase produced by the xkcdpass command,
which must be installed and on PATH.

Examples:
  dotenvk randomize SECRET_KEY
  dotenvk randomize API_TOKEN --length 64 --numeric --symbol
  dotenvk randomize PASSPHRASE --xkcd`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting randomize command")

		// Flags win over config file defaults.
		if !cmd.Flags().Changed("length") {
			randomizeLength = cfg.Defaults.Length
		}
		if !cmd.Flags().Changed("numeric") {
			randomizeNumeric = cfg.Defaults.Numeric
		}
		if !cmd.Flags().Changed("symbol") {
			randomizeSymbol = cfg.Defaults.Symbol
		}

		spinner, cleanup := startSpinner("Generating values...")
		defer cleanup()

		doc, err := envfile.Load(envFile)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to load env file"
			return Logger.ErrorfAndReturn("failed to load env file: %v", err)
		}
		before := doc.String()

		for _, key := range args {
			var value string
			if randomizeXKCD {
				value, err = secret.XKCD(cmd.Context(), cfg.XKCD.Command)
			} else {
				value, err = secret.Generate(randomizeLength, randomizeNumeric, randomizeSymbol)
			}
			if err != nil {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to generate a value for " + ui.Key.Sprint(key)
				return Logger.ErrorfAndReturn("failed to generate value: %v", err)
			}
			if err := doc.Set(key, value); err != nil {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Invalid key " + ui.Key.Sprint(key)
				return Logger.ErrorfAndReturn("failed to set %s: %v", key, err)
			}
			Logger.Debugf("Randomized %s", key)
		}

		if randomizeDryRun {
			spinner.FinalMSG = ui.Diff(before, doc.String()) + ui.Muted.Sprint("dry run, nothing written")
			return nil
		}

		if err := envfile.Save(envFile, doc); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save env file"
			return Logger.ErrorfAndReturn("failed to save env file: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Randomized " + ui.Key.Sprint(strings.Join(args, ", ")) + " in " + ui.Path.Sprint(envFile)
		return nil
	},
}
