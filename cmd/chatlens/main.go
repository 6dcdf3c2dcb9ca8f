package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chatlens/chatlens/internal/config"
	"github.com/chatlens/chatlens/internal/parse"
)

var version = "dev"

// logger is silent unless --verbose enables console diagnostics.
var logger = zerolog.Nop()

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "chatlens [export file]",
		Short:   "chatlens - analyze exported chat logs from your terminal",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
					Timestamp().
					Logger()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(usersCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(sentimentCmd())
	rootCmd.AddCommand(dashCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRecords resolves the export path (argument first, config default
// second), reads the file, and parses it into the record sequence.
func loadRecords(args []string) ([]parse.Record, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	path := cfg.ExportPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, nil, fmt.Errorf("no export file: pass a path or set export_path in the config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read export: %w", err)
	}

	start := time.Now()
	records, err := parse.Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("parse export: %w", err)
	}
	logger.Debug().
		Str("path", path).
		Int("records", len(records)).
		Dur("took", time.Since(start)).
		Msg("parsed export")

	return records, cfg, nil
}

// stdoutIsTerminal decides between styled tables and plain TSV output.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
