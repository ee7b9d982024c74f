// Package registry manages the MCP server registrations of the claude CLI.
// The claude tool is authoritative for a server's existence, command, and
// scope; the project-local .mcp.json sidecar file is authoritative for the
// disabled flag. Every read merges the two, and writes only ever touch the
// side that owns the field.
package registry

import "strings"

// Transport is the invocation style of an MCP server.
type Transport string

const (
	// TransportStdio spawns a local process and speaks over its pipes.
	TransportStdio Transport = "stdio"
	// TransportSSE connects to a server-sent-events URL.
	TransportSSE Transport = "sse"
)

// Scope is the visibility tier of a server registration.
type Scope string

const (
	ScopeLocal   Scope = "local"
	ScopeProject Scope = "project"
	ScopeUser    Scope = "user"
)

// ParseScope maps free-form scope text from claude's output onto a Scope.
// Matching is case-insensitive and by substring ("User config" -> user);
// anything unrecognized falls back to local.
func ParseScope(s string) Scope {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "local"):
		return ScopeLocal
	case strings.Contains(lower, "project"):
		return ScopeProject
	case strings.Contains(lower, "user"), strings.Contains(lower, "global"):
		return ScopeUser
	default:
		return ScopeLocal
	}
}

// ServerRecord is one MCP server as reported by the claude CLI, merged with
// the sidecar overlay. Only Disabled is persisted by this tool; everything
// else is derived fresh on each call.
type ServerRecord struct {
	Name      string            `json:"name"`
	Transport Transport         `json:"transport"`
	Command   string            `json:"command,omitempty"`
	Args      []string          `json:"args"`
	Env       map[string]string `json:"env"`
	URL       string            `json:"url,omitempty"`
	Scope     Scope             `json:"scope"`
	Active    bool              `json:"is_active"`
	Disabled  bool              `json:"disabled"`
	Status    ServerStatus      `json:"status"`
}

// ServerStatus is advisory liveness information, never authoritative.
type ServerStatus struct {
	Running     bool   `json:"running"`
	Error       string `json:"error,omitempty"`
	LastChecked int64  `json:"last_checked,omitempty"`
}

// AddRequest describes a server to register with claude.
type AddRequest struct {
	Name      string
	Transport Transport
	Command   string
	Args      []string
	Env       map[string]string
	URL       string
	Scope     Scope
}

// AddResult reports the outcome of an add. Validation problems come back as
// Success=false with a message rather than an error, so callers render them
// uniformly.
type AddResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ServerName string `json:"server_name,omitempty"`
}

// ImportResult aggregates the outcome of a Claude Desktop import.
type ImportResult struct {
	ImportedCount int                  `json:"imported_count"`
	FailedCount   int                  `json:"failed_count"`
	Servers       []ImportServerResult `json:"servers"`
}

// ImportServerResult is the outcome for a single imported server.
type ImportServerResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
