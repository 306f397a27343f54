package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/config"
	"github.com/funvibe/funbf/internal/debugger"
	"github.com/funvibe/funbf/internal/engine"
	"github.com/funvibe/funbf/internal/history"
	"github.com/funvibe/funbf/internal/logging"
	"github.com/funvibe/funbf/internal/tui"
)

var (
	debugTapeSize      int
	debugPointerPolicy string
	debugEOFPolicy     string
	debugInput         string
	debugInputFile     string
	debugThrottle      int
)

var debugCmd = &cobra.Command{
	Use:   "debug <file>",
	Short: "Step through a program interactively",
	Long: `Opens an interactive debugger showing the tape, the data pointer,
the program position and the output as the program executes.

Keys:
  any key   execute one instruction (while paused)
  c         continue - run until pause, halt or quit
  p         pause
  up/down   run faster/slower (doubles or halves the redraw throttle)
  q         quit

Because the session owns the terminal, input is supplied up front with
--input or --input-file; an exhausted source reads as zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().IntVar(&debugTapeSize, "tape-size", 0, "initial tape length (default from config)")
	debugCmd.Flags().StringVar(&debugPointerPolicy, "pointer-policy", "", "pointer underflow policy: clamp, error or wrap")
	debugCmd.Flags().StringVar(&debugEOFPolicy, "eof-policy", "", "input exhaustion policy: zero or nochange")
	debugCmd.Flags().StringVar(&debugInput, "input", "", "fixed input string for ',' instructions")
	debugCmd.Flags().StringVar(&debugInputFile, "input-file", "", "file to read input from")
	debugCmd.Flags().IntVar(&debugThrottle, "throttle", 0, "initial instructions per redraw while running")
}

func runDebug(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("debug needs a terminal (stdout is not a tty)")
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logging goes to a file only.
	log, closeLog, err := logging.New(logging.Options{
		Verbose:  verbose,
		Quiet:    true,
		FilePath: config.DebugLogFileName,
	})
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

	input := []byte(debugInput)
	if debugInputFile != "" {
		data, err := os.ReadFile(debugInputFile)
		if err != nil {
			return fmt.Errorf("reading input file: %w", err)
		}
		input = data
	}

	opts, err := engineOptions(cfg, debugTapeSize, debugPointerPolicy, debugEOFPolicy)
	if err != nil {
		return err
	}
	opts.Input = bytes.NewReader(input)

	machine := engine.New(ctx.Program, opts)
	session := debugger.NewSession(machine)
	if debugThrottle > 0 {
		session.SetThrottle(debugThrottle)
	} else {
		session.SetThrottle(cfg.Throttle)
	}

	log.Info("debug session started", "file", args[0], "instructions", ctx.Program.Len())

	started := time.Now()
	program := tea.NewProgram(tui.NewModel(session, input), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running debugger: %w", err)
	}
	elapsed := time.Since(started)

	errText := ""
	if derr := session.Err(); derr != nil {
		errText = derr.Error()
	}

	recordRun(cmd.Context(), log, cfg, &history.Run{
		SourcePath:  args[0],
		Mode:        "debug",
		Steps:       machine.Steps(),
		OutputBytes: len(session.Output()),
		Duration:    elapsed,
		StartedAt:   started,
		Error:       errText,
	})

	log.Info("debug session ended",
		"steps", machine.Steps(),
		"redraws", session.Redraws(),
		"elapsed", elapsed)

	if derr := session.Err(); derr != nil {
		return derr
	}

	// The alt screen is gone; replay the program's output.
	if len(session.Output()) > 0 {
		os.Stdout.Write(session.Output())
	}
	return nil
}
