package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stringpatterns/pkg/numeric"
)

var numbersFirst bool

// numbersCmd extracts numbers from text
var numbersCmd = &cobra.Command{
	Use:   "numbers [text]",
	Short: "Extract numbers from text",
	Long: `Extract every number embedded in text and print one per line.
The locale controls which separators count as decimal points: standard
treats "." as decimal and "," as grouping, european the reverse.

Examples:
  # Coordinates
  strpat numbers "-78.29826, 34.15"

  # European decimal commas
  strpat numbers --locale european "2.500 grammi o 1,5 kg"

  # Only the first number
  echo "Price £12.50 each" | strpat numbers --first`,
	RunE: runNumbers,
}

func init() {
	numbersCmd.Flags().BoolVar(&numbersFirst, "first", false, "print only the first number")
}

func runNumbers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	text, err := readInput(args)
	if err != nil {
		return err
	}
	loc := cfg.NumericLocale()
	logger.Debug("extracting numbers", zap.String("locale", loc.String()))

	if numbersFirst {
		n, ok := numeric.FirstNumber[float64](text, loc)
		if !ok {
			return fmt.Errorf("no number found")
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}

	for m := range numeric.Scan(text, loc) {
		fmt.Fprintln(cmd.OutOrStdout(), m.Text)
	}
	return nil
}
