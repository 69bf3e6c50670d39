package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/taskmgr/internal/core/services"
)

// setupTestServices installs a factory over in-memory stores and returns
// the services it builds. State is restored when the test ends.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	config := memory.NewConfigStore()
	built := &Services{
		Tasks:    services.NewTaskCoordinator(memory.NewTaskStore()),
		Settings: services.NewSettingsService(config),
		Config:   config,
	}

	oldFactory := serviceFactory
	oldServices := active
	SetServiceFactory(func(Options) (*Services, error) { return built, nil })

	t.Cleanup(func() {
		serviceFactory = oldFactory
		active = oldServices
		resetFlags()
	})
	return built
}

func resetFlags() {
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	rootCmd.SetArgs(nil)
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
