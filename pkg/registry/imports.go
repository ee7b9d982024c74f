package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/penumbra-labs/mcpctl/pkg/logger"
)

// desktopServer is one entry of Claude Desktop's claude_desktop_config.json.
// Command is a pointer so a missing field is distinguishable from an empty
// one.
type desktopServer struct {
	Name    string
	Command *string
	Args    []string
	Env     map[string]string
}

// DesktopConfigPath returns the platform location of the Claude Desktop
// configuration file.
func DesktopConfigPath() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "could not find home directory")
		}
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "linux":
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", errors.Wrap(err, "could not find config directory")
		}
		return filepath.Join(configDir, "Claude", "claude_desktop_config.json"), nil
	default:
		return "", errors.Errorf("import from Claude Desktop is not supported on %s", runtime.GOOS)
	}
}

// ImportFromClaudeDesktop reads the Claude Desktop configuration and
// registers each of its servers with claude via add-json. Every entry is
// imported independently; a bad entry is recorded as a failure and the batch
// continues. Per-entry outcomes keep the file's order.
func (r *Registry) ImportFromClaudeDesktop(ctx context.Context, scope Scope) (*ImportResult, error) {
	configPath, err := DesktopConfigPath()
	if err != nil {
		return nil, err
	}
	return r.importFromDesktopConfig(ctx, configPath, scope)
}

func (r *Registry) importFromDesktopConfig(ctx context.Context, configPath string, scope Scope) (*ImportResult, error) {
	log := logger.G(ctx).WithField("path", configPath).WithField("scope", scope)
	log.Info("importing MCP servers from Claude Desktop")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("Claude Desktop configuration not found. Make sure Claude Desktop is installed.")
		}
		return nil, errors.Wrap(err, "failed to read Claude Desktop config")
	}

	entries, err := decodeDesktopServers(data)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Servers: []ImportServerResult{}}

	for _, entry := range entries {
		outcome := r.importOne(ctx, entry, scope)
		result.Servers = append(result.Servers, outcome)
		if outcome.Success {
			result.ImportedCount++
		} else {
			result.FailedCount++
		}
	}

	log.WithField("imported", result.ImportedCount).WithField("failed", result.FailedCount).Info("import complete")
	return result, nil
}

func (r *Registry) importOne(ctx context.Context, entry desktopServer, scope Scope) ImportServerResult {
	if entry.Command == nil {
		return ImportServerResult{Name: entry.Name, Success: false, Error: "Missing command field"}
	}

	// Claude Desktop servers are always stdio; args and env default to empty
	// collections rather than failing.
	args := entry.Args
	if args == nil {
		args = []string{}
	}
	env := entry.Env
	if env == nil {
		env = map[string]string{}
	}

	payload, err := json.Marshal(map[string]any{
		"type":    "stdio",
		"command": *entry.Command,
		"args":    args,
		"env":     env,
	})
	if err != nil {
		return ImportServerResult{Name: entry.Name, Success: false, Error: err.Error()}
	}

	addResult, err := r.AddJSON(ctx, entry.Name, string(payload), scope)
	if err != nil {
		return ImportServerResult{Name: entry.Name, Success: false, Error: err.Error()}
	}
	if !addResult.Success {
		return ImportServerResult{Name: entry.Name, Success: false, Error: addResult.Message}
	}

	return ImportServerResult{Name: entry.Name, Success: true}
}

// decodeDesktopServers walks the JSON token stream so entries come back in
// the file's order; unmarshalling into a map would scramble it.
func decodeDesktopServers(data []byte) ([]desktopServer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Claude Desktop config")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("failed to parse Claude Desktop config: expected a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse Claude Desktop config")
		}
		key, _ := keyTok.(string)

		if key != "mcpServers" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, errors.Wrap(err, "failed to parse Claude Desktop config")
			}
			continue
		}

		return decodeServerEntries(dec)
	}

	return nil, errors.New("No MCP servers found in Claude Desktop config")
}

func decodeServerEntries(dec *json.Decoder) ([]desktopServer, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Claude Desktop config")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("No MCP servers found in Claude Desktop config")
	}

	entries := []desktopServer{}
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse Claude Desktop config")
		}
		name, _ := nameTok.(string)

		var raw struct {
			Command *string           `json:"command"`
			Args    []string          `json:"args"`
			Env     map[string]string `json:"env"`
		}
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "failed to parse Claude Desktop config entry %q", name)
		}

		entries = append(entries, desktopServer{
			Name:    name,
			Command: raw.Command,
			Args:    raw.Args,
			Env:     raw.Env,
		})
	}

	return entries, nil
}

// Err folds the batch's per-server failures into one error, or nil if every
// entry imported. Useful for exit-status decisions after rendering the
// per-server outcomes.
func (ir *ImportResult) Err() error {
	var merr *multierror.Error
	for _, server := range ir.Servers {
		if !server.Success {
			merr = multierror.Append(merr, errors.Errorf("%s: %s", server.Name, server.Error))
		}
	}
	return merr.ErrorOrNil()
}
