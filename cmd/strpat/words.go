package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stringpatterns/pkg/words"
)

var (
	wordsCount   bool
	wordsReplace string
)

// wordsCmd matches or replaces whole words
var wordsCmd = &cobra.Command{
	Use:   "words WORD [text]",
	Short: "Match or replace whole words",
	Long: `Test whether text contains WORD as a whole word, bounded on the
sides selected by --bounds. Unlike plain matching, "cat" does not match
inside "category".

Examples:
  # Whole-word match
  strpat words cat "the cat sat"

  # Only require a word start
  strpat words --bounds start writ "writing and written"

  # Count occurrences
  strpat words --count -i lorem "Lorem ipsum lorem"

  # Replace whole words
  strpat words cat --replace dog "cat in a catalog"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&wordsCount, "count", false, "print the number of whole-word matches")
	wordsCmd.Flags().StringVar(&wordsReplace, "replace", "", "replace whole-word matches with this text")
}

func runWords(cmd *cobra.Command, args []string) error {
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
	word := args[0]
	bounds := cfg.WordBounds()
	logger.Debug("word operation", zap.String("word", word), zap.String("bounds", bounds.String()))

	if cmd.Flags().Changed("replace") {
		fmt.Fprintln(cmd.OutOrStdout(), words.ReplaceBounds(text, word, wordsReplace, bounds, cfg.Insensitive))
		return nil
	}
	if wordsCount {
		fmt.Fprintln(cmd.OutOrStdout(), words.CountBounds(text, word, bounds, cfg.Insensitive))
		return nil
	}

	ok := words.MatchBounds(text, word, bounds, cfg.Insensitive)
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		return errNoMatch
	}
	return nil
}
