package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for taskmgr.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "taskmgr",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler, rate limited per settings.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	cfg := RateLimitConfigFrom(s.mcpSettings())
	if cfg.RequestsPerSecond <= 0 {
		return handler
	}
	logger.Debug("mcp: rate limit %g req/s, burst %d", cfg.RequestsPerSecond, cfg.BurstSize)
	return NewRateLimiter(cfg).Middleware(handler)
}

// mcpSettings returns stored MCP settings, falling back to defaults.
func (s *Server) mcpSettings() domain.MCPSettings {
	defaults := domain.DefaultAppSettings().MCP
	if s.ports.Settings == nil {
		return defaults
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		logger.Warn("mcp: loading settings: %v", err)
		return defaults
	}
	return settings.MCP
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
