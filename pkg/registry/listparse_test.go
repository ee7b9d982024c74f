package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListOutput(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseListOutput(""))
		assert.Empty(t, ParseListOutput("   \n  \n"))
	})

	t.Run("no servers sentinel", func(t *testing.T) {
		assert.Empty(t, ParseListOutput("No MCP servers configured."))
	})

	t.Run("single server", func(t *testing.T) {
		servers := ParseListOutput("weather: npx -y weather-server")
		require.Len(t, servers, 1)
		assert.Equal(t, "weather", servers[0].Name)
		assert.Equal(t, "npx -y weather-server", servers[0].Command)
		assert.Equal(t, TransportStdio, servers[0].Transport)
		assert.Equal(t, ScopeLocal, servers[0].Scope)
		assert.False(t, servers[0].Disabled)
	})

	t.Run("multiple servers", func(t *testing.T) {
		output := "weather: npx -y weather-server\ntickets: node tickets.js\ndb: python db_server.py"
		servers := ParseListOutput(output)
		require.Len(t, servers, 3)
		assert.Equal(t, "weather", servers[0].Name)
		assert.Equal(t, "tickets", servers[1].Name)
		assert.Equal(t, "db", servers[2].Name)
	})

	t.Run("wrapped command folds into one record", func(t *testing.T) {
		servers := ParseListOutput("foo: run server.js\n  --port 3000")
		require.Len(t, servers, 1)
		assert.Equal(t, "foo", servers[0].Name)
		assert.Equal(t, "run server.js --port 3000", servers[0].Command)
	})

	t.Run("command wrapped across several lines keeps fragment order", func(t *testing.T) {
		output := "big: docker run -i --rm\n  -v /data:/data\n  -e TOKEN=abc\n  mcp/server\nnext: node x.js"
		servers := ParseListOutput(output)
		require.Len(t, servers, 2)
		assert.Equal(t, "docker run -i --rm -v /data:/data -e TOKEN=abc mcp/server", servers[0].Command)
		assert.Equal(t, "next", servers[1].Name)
	})

	t.Run("windows path continuation is not a new record", func(t *testing.T) {
		output := "winsrv: cmd /c\n  C:\\tools\\server.exe --flag"
		servers := ParseListOutput(output)
		require.Len(t, servers, 1)
		assert.Equal(t, "winsrv", servers[0].Name)
		assert.Equal(t, "cmd /c C:\\tools\\server.exe --flag", servers[0].Command)
	})

	t.Run("unix path before colon is not a record start", func(t *testing.T) {
		output := "srv: run\n  /usr/local/bin/helper: something"
		servers := ParseListOutput(output)
		require.Len(t, servers, 1)
		assert.Equal(t, "run /usr/local/bin/helper: something", servers[0].Command)
	})

	t.Run("banner noise before first record is dropped", func(t *testing.T) {
		output := "Checking server health\n\nweather: npx weather"
		servers := ParseListOutput(output)
		require.Len(t, servers, 1)
		assert.Equal(t, "weather", servers[0].Name)
	})

	t.Run("empty name is not a record start", func(t *testing.T) {
		servers := ParseListOutput("srv: run\n  : orphan fragment")
		require.Len(t, servers, 1)
		assert.Equal(t, "run : orphan fragment", servers[0].Command)
	})
}
