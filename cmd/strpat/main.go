// Package main implements the strpat CLI for pattern matching, replacement
// and number extraction from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/stringpatterns/internal/config"
	"github.com/fyrsmithlabs/stringpatterns/internal/logging"
)

var (
	configPath  string
	verbose     bool
	insensitive bool
	locale      string
	bounds      string

	version = "dev"
)

// errNoMatch signals a clean negative result: exit non-zero, print nothing.
var errNoMatch = errors.New("no match")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "strpat",
	Short: "String pattern matching and extraction",
	Long: `strpat applies regular expression and whole-word operations to text
from arguments or stdin: matching, replacement, splitting, word boundary
checks and numeric extraction.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&insensitive, "insensitive", "i", false, "case-insensitive matching")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "numeric locale: standard or european")
	rootCmd.PersistentFlags().StringVar(&bounds, "bounds", "", "word boundary mode: none, start, end or both")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(numbersCmd)
	rootCmd.AddCommand(wordsCmd)
}

// loadConfig loads configuration and applies flag overrides. Flags win over
// environment variables and the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("insensitive") {
		cfg.Insensitive = insensitive
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = locale
	}
	if cmd.Flags().Changed("bounds") {
		cfg.Bounds = bounds
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command run.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log)
}

// readInput returns the text to operate on: the remaining arguments joined
// with spaces, or stdin when no argument is given or the argument is "-".
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
