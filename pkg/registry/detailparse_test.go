package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDetailOutput(t *testing.T) {
	t.Run("stdio server", func(t *testing.T) {
		output := `weather:
  Scope: Local config
  Type: stdio
  Command: node index.js
  Args: --port 3000 --verbose
`
		record := ParseDetailOutput("weather", output)
		assert.Equal(t, "weather", record.Name)
		assert.Equal(t, ScopeLocal, record.Scope)
		assert.Equal(t, TransportStdio, record.Transport)
		assert.Equal(t, "node index.js", record.Command)
		assert.Equal(t, []string{"--port", "3000", "--verbose"}, record.Args)
	})

	t.Run("user scope", func(t *testing.T) {
		record := ParseDetailOutput("s", "Scope: User config\nCommand: node index.js")
		assert.Equal(t, ScopeUser, record.Scope)
		assert.Equal(t, "node index.js", record.Command)
	})

	t.Run("global maps to user scope", func(t *testing.T) {
		record := ParseDetailOutput("s", "Scope: Global (all projects)")
		assert.Equal(t, ScopeUser, record.Scope)
	})

	t.Run("project scope", func(t *testing.T) {
		record := ParseDetailOutput("s", "Scope: Project (shared via .mcp.json)")
		assert.Equal(t, ScopeProject, record.Scope)
	})

	t.Run("unrecognized scope defaults to local", func(t *testing.T) {
		record := ParseDetailOutput("s", "Scope: something else")
		assert.Equal(t, ScopeLocal, record.Scope)
	})

	t.Run("sse server", func(t *testing.T) {
		output := "Scope: local\nType: sse\nURL: https://mcp.example.com/sse"
		record := ParseDetailOutput("events", output)
		assert.Equal(t, TransportSSE, record.Transport)
		assert.Equal(t, "https://mcp.example.com/sse", record.URL)
		assert.Empty(t, record.Command)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		record := ParseDetailOutput("bare", "")
		assert.Equal(t, TransportStdio, record.Transport)
		assert.Equal(t, ScopeLocal, record.Scope)
		assert.Empty(t, record.Command)
		assert.Empty(t, record.URL)
		assert.Empty(t, record.Args)
	})

	t.Run("empty args stay empty", func(t *testing.T) {
		record := ParseDetailOutput("s", "Command: run\nArgs: ")
		assert.Empty(t, record.Args)
	})

	t.Run("environment block is ignored", func(t *testing.T) {
		output := "Command: run\nEnvironment:\n  API_KEY=secret\nunrelated line"
		record := ParseDetailOutput("s", output)
		assert.Equal(t, "run", record.Command)
		assert.Empty(t, record.Env)
	})
}
