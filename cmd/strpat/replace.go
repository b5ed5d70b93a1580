package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stringpatterns/pkg/pattern"
)

var replaceFirst bool

// replaceCmd replaces pattern matches in text
var replaceCmd = &cobra.Command{
	Use:   "replace PATTERN REPLACEMENT [text]",
	Short: "Replace pattern matches in text",
	Long: `Replace every match of a regular expression and print the result.
The replacement may reference capture groups with $1, $2 and so on.

Examples:
  # Mask digits
  strpat replace '\d' '#' "card 4242"

  # Swap words using groups
  strpat replace '(\w+) (\w+)' '$2 $1' "hello world"

  # Only the first occurrence
  strpat replace --first 'cat' 'dog' "cat and cat"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().BoolVar(&replaceFirst, "first", false, "replace only the first match")
}

func runReplace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	text, err := readInput(args[2:])
	if err != nil {
		return err
	}
	logger.Debug("replacing", zap.String("pattern", args[0]), zap.Bool("first", replaceFirst))

	var result string
	if replaceFirst {
		result, err = pattern.ReplaceFirst(text, args[0], args[1], cfg.Insensitive)
	} else {
		result, err = pattern.Replace(text, args[0], args[1], cfg.Insensitive)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
