package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ConfigFileName is the sidecar file this tool owns within a project.
const ConfigFileName = ".mcp.json"

// ProjectConfig is the top-level structure of the .mcp.json sidecar.
type ProjectConfig struct {
	MCPServers map[string]ServerConfigEntry `json:"mcpServers"`
}

// ServerConfigEntry is the only structure this tool persists. The claude CLI
// has no native notion of a disabled server, so the flag lives here and
// toggling never touches claude's own store.
type ServerConfigEntry struct {
	Command  string            `json:"command"`
	Args     []string          `json:"args"`
	Env      map[string]string `json:"env"`
	Disabled bool              `json:"disabled"`
}

// NewProjectConfig returns an empty config with an initialized server map.
func NewProjectConfig() *ProjectConfig {
	return &ProjectConfig{MCPServers: make(map[string]ServerConfigEntry)}
}

func configPath(projectPath string) string {
	return filepath.Join(projectPath, ConfigFileName)
}

// ReadProjectConfig loads the sidecar file from the given project directory.
// An absent file yields an empty config, not an error. Note there is no
// locking here: concurrent read-modify-write against the same project races
// and the last writer wins; callers needing concurrent access must serialize
// around this store themselves.
func ReadProjectConfig(projectPath string) (*ProjectConfig, error) {
	path := configPath(projectPath)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewProjectConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var config ProjectConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}

	if config.MCPServers == nil {
		config.MCPServers = make(map[string]ServerConfigEntry)
	}

	return &config, nil
}

// SaveProjectConfig writes the sidecar file into the given project directory.
func SaveProjectConfig(projectPath string, config *ProjectConfig) error {
	path := configPath(projectPath)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize project config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}
