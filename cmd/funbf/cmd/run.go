package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/backend"
	"github.com/funvibe/funbf/internal/config"
	"github.com/funvibe/funbf/internal/history"
	"github.com/funvibe/funbf/internal/logging"
)

var (
	runTapeSize      int
	runPointerPolicy string
	runEOFPolicy     string
	runInput         string
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a program",
	Long: `Executes a program to completion, writing its output to stdout.

Input instructions read from stdin unless --input supplies a fixed
string. Exhausted input is handled per the eof policy.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runTapeSize, "tape-size", 0, "initial tape length (default from config)")
	runCmd.Flags().StringVar(&runPointerPolicy, "pointer-policy", "", "pointer underflow policy: clamp, error or wrap")
	runCmd.Flags().StringVar(&runEOFPolicy, "eof-policy", "", "input exhaustion policy: zero or nochange")
	runCmd.Flags().StringVar(&runInput, "input", "", "fixed input string instead of stdin")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(logging.Options{Verbose: verbose})
	if err != nil {
		return err
	}
	defer closeLog()

	source, err := loadSource(args[0])
	if err != nil {
		return err
	}

	ctx, err := frontend(source, args[0])
	if err != nil {
		return err
	}

	opts, err := engineOptions(cfg, runTapeSize, runPointerPolicy, runEOFPolicy)
	if err != nil {
		return err
	}
	if runInput != "" {
		opts.Input = bytes.NewReader([]byte(runInput))
	} else {
		opts.Input = bufio.NewReader(os.Stdin)
	}

	exec := backend.NewExecutionProcessor(backend.NewInterpreter(os.Stdout, opts))

	started := time.Now()
	ctx = exec.Process(ctx)
	elapsed := time.Since(started)

	recordRun(cmd.Context(), log, cfg, &history.Run{
		SourcePath:  args[0],
		Mode:        "run",
		Steps:       exec.Stats.Steps,
		OutputBytes: exec.Stats.OutputBytes,
		Duration:    elapsed,
		StartedAt:   started,
		Error:       firstError(ctx.Errors),
	})

	if len(ctx.Errors) > 0 {
		printDiagnostics(ctx.Errors)
		return fmt.Errorf("execution failed")
	}

	log.Debug("run complete",
		"steps", exec.Stats.Steps,
		"output_bytes", exec.Stats.OutputBytes,
		"elapsed", elapsed)
	return nil
}
