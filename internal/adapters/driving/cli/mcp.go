package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read and
edit the task list.

By default, the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead. HTTP requests are rate limited
according to the mcp.rate_limit and mcp.burst settings.

Examples:
  # Stdio mode (default)
  taskmgr mcp serve

  # HTTP mode
  taskmgr mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "taskmgr": {
        "command": "/path/to/taskmgr",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	s, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Tasks:    s.Tasks,
		Settings: s.Settings,
	})
	if err != nil {
		return err
	}

	stopWatch := startWatch(cmd.Context(), s)
	defer stopWatch()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
