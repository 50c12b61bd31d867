package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/booksearch/internal/openlibrary"
	"github.com/pdiddy/booksearch/internal/search"
	"github.com/pdiddy/booksearch/internal/tui"
	"github.com/pdiddy/booksearch/pkg/types"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search interactively as you type",
	Long: `Tui opens a terminal search box. Results refresh once typing pauses for the
debounce delay; pgup/pgdown (or ctrl+p/ctrl+n) move between pages and ctrl+r
retries a failed request.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Duration("debounce", types.DefaultDebounce, "input quiescence delay before searching")
	tuiCmd.Flags().String("log-file", "", "write debug logs to this file (no logging when empty)")

	bindFlag(tuiCmd, "search.debounce", "debounce")
	bindFlag(tuiCmd, "log.file", "log-file")

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	logger := zap.NewNop()
	if path := viper.GetString("log.file"); path != "" {
		l, err := newLogger(path)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		defer logger.Sync() //nolint:errcheck
	}

	updates := tui.NewUpdates()
	ctrl := search.New(openlibrary.NewClient(cfg, logger),
		search.WithDebounce(cfg.Debounce),
		search.WithLogger(logger),
		search.WithListener(updates.Publish),
	)
	defer ctrl.Close()

	logger.Info("starting interactive search", zap.Duration("debounce", cfg.Debounce))

	p := tea.NewProgram(tui.New(ctrl, updates), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
