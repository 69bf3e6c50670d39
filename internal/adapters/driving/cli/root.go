// Package cli provides the cobra command tree for taskmgr.
// Commands reach the core only through driving ports, which the
// composition root supplies via SetServiceFactory.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// annotationNoServices marks commands that run without the core.
const annotationNoServices = "taskmgr/no-services"

// Options holds the global flag values passed to the service factory.
type Options struct {
	// ConfigDir overrides the settings directory. Empty means the default.
	ConfigDir string

	// NoConfig keeps settings in memory for the life of the process.
	NoConfig bool
}

// ConfigWatcher reloads settings when their storage changes.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
	Path() string
}

// Services are the driving ports and helpers commands operate on.
type Services struct {
	Tasks    driving.TaskCoordinator
	Settings driving.SettingsService

	// Config is optional; commands skip watching without it.
	Config ConfigWatcher

	// LogDir receives debug.log while the TUI owns the terminal.
	// Empty when settings are not stored on disk.
	LogDir string
}

// ServiceFactory builds services once global flags are parsed.
type ServiceFactory func(opts Options) (*Services, error)

var (
	serviceFactory ServiceFactory
	active         *Services

	verbose   bool
	configDir string
	noConfig  bool

	// isTerminal reports whether stdin is an interactive terminal.
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// ErrServicesNotConfigured is returned when a command needs the core but
// no service factory was set.
var ErrServicesNotConfigured = errors.New("cli: services not configured")

var rootCmd = &cobra.Command{
	Use:   "taskmgr",
	Short: "A small task list manager",
	Long: `taskmgr keeps an ordered list of tasks for the current session.

Run it without arguments on a terminal to open the interactive UI, or use
"taskmgr mcp serve" to expose the list to AI assistants.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "settings directory (default ~/.taskmgr)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "keep settings in memory only")
	rootCmd.MarkFlagsMutuallyExclusive("config-dir", "no-config")
}

// SetServiceFactory sets the function that builds services for commands.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if _, skip := cmd.Annotations[annotationNoServices]; skip || cmd.Name() == "help" {
		return nil
	}
	if serviceFactory == nil {
		return ErrServicesNotConfigured
	}

	built, err := serviceFactory(Options{ConfigDir: configDir, NoConfig: noConfig})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	active = built

	if active.Config != nil {
		logger.Debug("settings: %s", active.Config.Path())
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return cmd.Help()
	}
	return runTUI(cmd, args)
}

// requireServices returns the built services or an error.
func requireServices() (*Services, error) {
	if active == nil || active.Tasks == nil {
		return nil, ErrServicesNotConfigured
	}
	return active, nil
}

// startWatch reloads settings in the background until the returned
// function is called.
func startWatch(ctx context.Context, s *Services) func() {
	if s.Config == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.Config.Watch(ctx, func() {
			logger.Debug("settings reloaded from %s", s.Config.Path())
		})
		if err != nil {
			logger.Warn("settings watch stopped: %v", err)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
