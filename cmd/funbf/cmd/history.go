package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/funvibe/funbf/internal/config"
	"github.com/funvibe/funbf/internal/history"
)

var (
	historyLimit     int
	historyPruneDays int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Lists recorded runs, newest first. Every run and debug session is
recorded unless history is disabled in the configuration.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
	historyCmd.Flags().IntVar(&historyPruneDays, "prune-older-than", 0, "delete runs older than this many days before listing")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.History.Disabled {
		fmt.Println("history is disabled in the configuration")
		return nil
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if historyPruneDays > 0 {
		n, err := store.Prune(cmd.Context(), time.Duration(historyPruneDays)*24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Printf("pruned %d run(s)\n", n)
	}

	runs, err := store.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	fmt.Printf("%-20s %-6s %12s %8s %12s  %s\n",
		"STARTED", "MODE", "STEPS", "OUTPUT", "DURATION", "SOURCE")
	for _, run := range runs {
		src := run.SourcePath
		if run.Error != "" {
			src += "  (" + run.Error + ")"
		}
		fmt.Printf("%-20s %-6s %12d %8d %12s  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Mode, run.Steps, run.OutputBytes, run.Duration, src)
	}
	return nil
}
