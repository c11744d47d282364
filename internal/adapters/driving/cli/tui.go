package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/postliste/internal/adapters/driving/tui"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("the interactive browser needs a terminal; use search, stats or export instead")

var tuiFlags queryFlags

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [text]",
	Short: "Browse records interactively",
	Long: `Launch the interactive terminal browser.

Type to search titles and counterparties; results update on every key.
Starting text, filters, a share link or a saved view set the first query.

Controls:
  tab        - Switch between search box and results
  ↑/k, ↓/j   - Navigate results
  n, p       - Next / previous page
  s, t, o    - Cycle status, type and sort
  x          - Clear filters
  enter      - Open record
  esc        - Back
  ?          - Help
  q, ctrl+c  - Quit`,
	RunE: runTUI,
}

func init() {
	tuiFlags.bind(tuiCmd, true)
	rootCmd.AddCommand(tuiCmd)
}

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Panic in TUI: %v\nStack trace:\n%s\n", r, debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	state, err := tuiFlags.state(cmd.Context(), cmd, args)
	if err != nil {
		return err
	}

	ports := tui.NewPorts(datasetService, queryService)
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).WithState(state).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
