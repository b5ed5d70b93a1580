package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/stringpatterns/pkg/pattern"
)

// splitCmd splits text on a pattern
var splitCmd = &cobra.Command{
	Use:   "split PATTERN [text]",
	Short: "Split text on a pattern",
	Long: `Split text on every match of a regular expression and print one
part per line. Empty parts are dropped.

Examples:
  # Split on runs of punctuation or whitespace
  strpat split '[,;\s]+' "one, two; three"

  # Split stdin on blank lines
  cat doc.txt | strpat split '\n\n+'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	text, err := readInput(args[1:])
	if err != nil {
		return err
	}

	parts, err := pattern.Split(text, args[0], cfg.Insensitive)
	if err != nil {
		return err
	}
	for _, part := range parts {
		if part == "" {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), part)
	}
	return nil
}
