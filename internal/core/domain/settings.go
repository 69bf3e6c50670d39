package domain

// Defaults for application settings.
const (
	DefaultTitle        = "Task Manager"
	DefaultMCPRateLimit = 10.0
	DefaultMCPBurst     = 20
)

// AppSettings holds all user-configurable settings.
// Settings never include the tasks themselves.
type AppSettings struct {
	Tasks TaskSettings
	UI    UISettings
	MCP   MCPSettings
}

// TaskSettings configures task list behaviour.
type TaskSettings struct {
	// DefaultOrder is applied when the TUI starts.
	DefaultOrder SortOrder
}

// UISettings configures the terminal UI.
type UISettings struct {
	// Title is shown in the menu header and the terminal window title.
	Title string
}

// MCPSettings configures the MCP server.
type MCPSettings struct {
	// RateLimit is the number of HTTP requests allowed per second.
	// Zero disables rate limiting.
	RateLimit float64

	// Burst is the maximum number of requests allowed at once.
	Burst int
}

// RateLimited returns true if HTTP requests should be rate limited.
func (m MCPSettings) RateLimited() bool {
	return m.RateLimit > 0
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Tasks: TaskSettings{
			DefaultOrder: SortUnordered,
		},
		UI: UISettings{
			Title: DefaultTitle,
		},
		MCP: MCPSettings{
			RateLimit: DefaultMCPRateLimit,
			Burst:     DefaultMCPBurst,
		},
	}
}

// Validate checks that the settings are usable.
func (s *AppSettings) Validate() error {
	if !s.Tasks.DefaultOrder.IsValid() {
		return ErrInvalidInput
	}
	if s.MCP.RateLimit < 0 || s.MCP.Burst < 0 {
		return ErrInvalidInput
	}
	if s.MCP.RateLimited() && s.MCP.Burst == 0 {
		return ErrInvalidInput
	}
	return nil
}
