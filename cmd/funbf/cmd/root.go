package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/config"
	"github.com/funvibe/funbf/internal/diagnostics"
	"github.com/funvibe/funbf/internal/engine"
	"github.com/funvibe/funbf/internal/history"
	"github.com/funvibe/funbf/internal/lexer"
	"github.com/funvibe/funbf/internal/pipeline"
	"github.com/funvibe/funbf/internal/resolver"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "funbf",
	Short: "Toolkit for the eight-instruction tape machine",
	Long: `funbf interprets, debugs and compiles programs for the classic
eight-instruction tape machine.

Commands:
  run      - execute a program
  debug    - step through a program interactively
  build    - generate a standalone Go module from a program
  dump     - print the collapsed program structure as JSON
  disasm   - print a program listing
  history  - show recorded runs`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadSource reads a source file, insisting on a recognized extension.
func loadSource(path string) (string, error) {
	recognized := false
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			recognized = true
			break
		}
	}
	if !recognized {
		return "", fmt.Errorf("%s: not a source file (want %s)",
			path, strings.Join(config.SourceFileExtensions, " or "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// frontend runs the lexer and resolver stages over the source and fails
// on any collected diagnostic.
func frontend(source, path string) (*pipeline.Context, error) {
	ctx := pipeline.NewContext(source)
	ctx.FilePath = path

	ctx = pipeline.New(&lexer.Processor{}, &resolver.Processor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		printDiagnostics(ctx.Errors)
		return nil, fmt.Errorf("%d error(s) in %s", len(ctx.Errors), filepath.Base(path))
	}
	return ctx, nil
}

func printDiagnostics(errs []*diagnostics.Error) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e.Error())
	}
}

func firstError(errs []*diagnostics.Error) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Error()
}

// engineOptions merges command-line overrides over the configuration.
func engineOptions(cfg config.Config, tapeSize int, pointerPolicy, eofPolicy string) (engine.Options, error) {
	if tapeSize <= 0 {
		tapeSize = cfg.TapeSize
	}
	if pointerPolicy == "" {
		pointerPolicy = cfg.PointerPolicy
	}
	if eofPolicy == "" {
		eofPolicy = cfg.EOFPolicy
	}

	pp, err := engine.ParsePointerPolicy(pointerPolicy)
	if err != nil {
		return engine.Options{}, err
	}
	ep, err := engine.ParseEOFPolicy(eofPolicy)
	if err != nil {
		return engine.Options{}, err
	}

	return engine.Options{
		TapeSize:      tapeSize,
		PointerPolicy: pp,
		EOFPolicy:     ep,
	}, nil
}

// recordRun stores one run in the history database. History failures
// are logged, never fatal: the run itself already happened.
func recordRun(ctx context.Context, log *slog.Logger, cfg config.Config, run *history.Run) {
	if cfg.History.Disabled {
		return
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		log.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, run); err != nil {
		log.Warn("recording run", "error", err)
	}
}
