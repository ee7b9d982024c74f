package registry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDesktopConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claude_desktop_config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// addJSONOKRunner accepts every add-json invocation.
type addJSONOKRunner struct {
	calls [][]string
}

func (r *addJSONOKRunner) Run(_ context.Context, args ...string) (string, string, int, error) {
	r.calls = append(r.calls, args)
	return "Added " + args[1] + "\n", "", 0, nil
}

func TestImportFromDesktopConfig(t *testing.T) {
	t.Run("mixed batch counts and keeps order", func(t *testing.T) {
		// Keys deliberately not alphabetical, so map iteration would scramble
		// them.
		content := `{
  "mcpServers": {
    "zulu": {"command": "npx", "args": ["-y", "zulu-server"]},
    "alpha": {"args": ["no-command"]},
    "mike": {"command": "node", "env": {"KEY": "v"}},
    "echo": {"command": "python"}
  }
}`
		path := writeDesktopConfig(t, content)
		runner := &addJSONOKRunner{}
		reg := New(runner, WithProjectPath(t.TempDir()))

		result, err := reg.importFromDesktopConfig(context.Background(), path, ScopeLocal)
		require.NoError(t, err)

		assert.Equal(t, 3, result.ImportedCount)
		assert.Equal(t, 1, result.FailedCount)
		require.Len(t, result.Servers, 4)

		names := []string{}
		for _, server := range result.Servers {
			names = append(names, server.Name)
		}
		assert.Equal(t, []string{"zulu", "alpha", "mike", "echo"}, names)

		assert.True(t, result.Servers[0].Success)
		assert.False(t, result.Servers[1].Success)
		assert.Equal(t, "Missing command field", result.Servers[1].Error)
		assert.True(t, result.Servers[2].Success)
		assert.True(t, result.Servers[3].Success)
	})

	t.Run("add-json invocations carry defaulted args and env", func(t *testing.T) {
		content := `{"mcpServers": {"bare": {"command": "server"}}}`
		path := writeDesktopConfig(t, content)
		runner := &addJSONOKRunner{}
		reg := New(runner, WithProjectPath(t.TempDir()))

		result, err := reg.importFromDesktopConfig(context.Background(), path, ScopeUser)
		require.NoError(t, err)
		assert.Equal(t, 1, result.ImportedCount)

		require.Len(t, runner.calls, 1)
		call := runner.calls[0]
		assert.Equal(t, "add-json", call[0])
		assert.Equal(t, "bare", call[1])
		assert.Contains(t, call[2], `"type":"stdio"`)
		assert.Contains(t, call[2], `"command":"server"`)
		assert.Contains(t, call[2], `"args":[]`)
		assert.Contains(t, call[2], `"env":{}`)
		assert.Equal(t, []string{"-s", "user"}, call[3:5])
	})

	t.Run("one claude failure does not abort the batch", func(t *testing.T) {
		content := `{"mcpServers": {"good": {"command": "a"}, "bad": {"command": "b"}, "also-good": {"command": "c"}}}`
		path := writeDesktopConfig(t, content)
		runner := &fakeRunner{responses: map[string]fakeResponse{}}
		// The fake returns exit 0 for everything except "bad".
		runner.responses[`add-json bad {"args":[],"command":"b","env":{},"type":"stdio"} -s local`] = fakeResponse{stderr: "duplicate server", exitCode: 1}
		reg := New(runner, WithProjectPath(t.TempDir()))

		result, err := reg.importFromDesktopConfig(context.Background(), path, ScopeLocal)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ImportedCount)
		assert.Equal(t, 1, result.FailedCount)
		assert.Contains(t, result.Servers[1].Error, "duplicate server")
	})

	t.Run("missing file", func(t *testing.T) {
		runner := &addJSONOKRunner{}
		reg := New(runner, WithProjectPath(t.TempDir()))

		_, err := reg.importFromDesktopConfig(context.Background(), filepath.Join(t.TempDir(), "nope.json"), ScopeLocal)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Claude Desktop configuration not found")
	})

	t.Run("no mcpServers key", func(t *testing.T) {
		path := writeDesktopConfig(t, `{"theme": "dark"}`)
		runner := &addJSONOKRunner{}
		reg := New(runner, WithProjectPath(t.TempDir()))

		_, err := reg.importFromDesktopConfig(context.Background(), path, ScopeLocal)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No MCP servers found")
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeDesktopConfig(t, `not json at all`)
		runner := &addJSONOKRunner{}
		reg := New(runner, WithProjectPath(t.TempDir()))

		_, err := reg.importFromDesktopConfig(context.Background(), path, ScopeLocal)
		assert.Error(t, err)
	})
}

func TestImportResultErr(t *testing.T) {
	t.Run("all success is nil", func(t *testing.T) {
		result := &ImportResult{Servers: []ImportServerResult{{Name: "a", Success: true}}}
		assert.NoError(t, result.Err())
	})

	t.Run("failures are aggregated", func(t *testing.T) {
		result := &ImportResult{Servers: []ImportServerResult{
			{Name: "a", Success: true},
			{Name: "b", Success: false, Error: "Missing command field"},
			{Name: "c", Success: false, Error: "duplicate server"},
		}}
		err := result.Err()
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "b: Missing command field"))
		assert.True(t, strings.Contains(err.Error(), "c: duplicate server"))
	})
}
