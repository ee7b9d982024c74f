package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProjectConfig(t *testing.T) {
	t.Run("missing file yields empty config", func(t *testing.T) {
		config, err := ReadProjectConfig(t.TempDir())
		require.NoError(t, err)
		assert.NotNil(t, config.MCPServers)
		assert.Empty(t, config.MCPServers)
	})

	t.Run("malformed json is a parse error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0o644))

		_, err := ReadProjectConfig(dir)
		require.Error(t, err)
		var parseErr *ConfigParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("null server map is initialized", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{}`), 0o644))

		config, err := ReadProjectConfig(dir)
		require.NoError(t, err)
		assert.NotNil(t, config.MCPServers)
	})

	t.Run("reads entries", func(t *testing.T) {
		dir := t.TempDir()
		content := `{"mcpServers": {"weather": {"command": "npx", "args": ["-y", "weather"], "env": {"KEY": "v"}, "disabled": true}}}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

		config, err := ReadProjectConfig(dir)
		require.NoError(t, err)
		entry, ok := config.MCPServers["weather"]
		require.True(t, ok)
		assert.Equal(t, "npx", entry.Command)
		assert.Equal(t, []string{"-y", "weather"}, entry.Args)
		assert.Equal(t, map[string]string{"KEY": "v"}, entry.Env)
		assert.True(t, entry.Disabled)
	})
}

func TestSaveProjectConfig(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		dir := t.TempDir()
		config := NewProjectConfig()
		config.MCPServers["a"] = ServerConfigEntry{Command: "node", Args: []string{"a.js"}, Env: map[string]string{}}
		config.MCPServers["b"] = ServerConfigEntry{Command: "python", Args: []string{}, Env: map[string]string{"X": "1"}, Disabled: true}

		require.NoError(t, SaveProjectConfig(dir, config))

		loaded, err := ReadProjectConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, config.MCPServers, loaded.MCPServers)
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		err := SaveProjectConfig(filepath.Join(t.TempDir(), "missing", "nested"), NewProjectConfig())
		assert.Error(t, err)
	})
}
