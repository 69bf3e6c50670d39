// Command taskmgr is a small task list manager with a terminal UI and an
// MCP server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/config/file"
	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/cli"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetServiceFactory(buildServices)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

// buildServices wires the core once global flags are known. The task
// store is created first and handed to the coordinator, which the
// driving adapters then receive.
func buildServices(opts cli.Options) (*cli.Services, error) {
	var (
		configStore driven.ConfigStore
		logDir      string
	)

	if opts.NoConfig {
		configStore = memory.NewConfigStore()
	} else {
		dir := opts.ConfigDir
		if dir == "" {
			defaultDir, err := file.DefaultConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolving config directory: %w", err)
			}
			dir = defaultDir
		}

		store, err := file.NewConfigStore(dir)
		if err != nil {
			return nil, fmt.Errorf("opening settings: %w", err)
		}
		configStore = store
		logDir = dir
	}

	taskStore := memory.NewTaskStore()

	return &cli.Services{
		Tasks:    services.NewTaskCoordinator(taskStore),
		Settings: services.NewSettingsService(configStore),
		Config:   configStore,
		LogDir:   logDir,
	}, nil
}
