package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stringpatterns/pkg/pattern"
)

var matchCount bool

// matchCmd tests a pattern against text
var matchCmd = &cobra.Command{
	Use:   "match PATTERN [text]",
	Short: "Test whether text matches a pattern",
	Long: `Test whether text matches a regular expression. Prints "true" or
"false" and exits non-zero when the text does not match.

Examples:
  # Match against an argument
  strpat match '\d{4}' "born in 1984"

  # Match stdin, ignoring case
  cat notes.txt | strpat match -i 'deadline'

  # Count matches instead
  strpat match --count '\d+' "1 and 2 and 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchCount, "count", false, "print the number of matches instead")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	text, err := readInput(args[1:])
	if err != nil {
		return err
	}
	logger.Debug("matching", zap.String("pattern", args[0]), zap.Int("text_len", len(text)))

	if matchCount {
		fmt.Fprintln(cmd.OutOrStdout(), pattern.Count(text, args[0], cfg.Insensitive))
		return nil
	}

	ok, err := pattern.MatchString(text, args[0], cfg.Insensitive)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		return errNoMatch
	}
	return nil
}
