package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/tui"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// debugLogName is the file debug output goes to while the TUI runs.
const debugLogName = "debug.log"

// ErrNotTerminal is returned when the TUI is started without a terminal.
var ErrNotTerminal = errors.New("tui requires an interactive terminal")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Controls:
  tab      - Cycle focus: new task, search, list
  enter    - Add the typed task
  ctrl+o   - Toggle the sort order
  ctrl+x   - Clear the list
  d        - Delete the selected task
  esc      - Back to the menu
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if !isTerminal() {
		return ErrNotTerminal
	}

	s, err := requireServices()
	if err != nil {
		return err
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	restore, err := redirectLogs(s, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer restore()

	stopWatch := startWatch(cmd.Context(), s)
	defer stopWatch()

	app, err := tui.NewApp(tui.NewPorts(s.Tasks, s.Settings))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs keeps debug output off the terminal the TUI draws on.
func redirectLogs(s *Services, stderr io.Writer) (func(), error) {
	if s.LogDir == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(stderr) }, nil
	}

	closeLog, err := logger.ToFile(filepath.Join(s.LogDir, debugLogName))
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	return func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(stderr, "closing debug log: %v\n", err)
		}
	}, nil
}
