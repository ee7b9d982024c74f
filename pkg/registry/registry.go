package registry

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/penumbra-labs/mcpctl/pkg/claudecli"
	"github.com/penumbra-labs/mcpctl/pkg/logger"
)

// Registry drives claude mcp subcommands and reconciles their output with
// the project's .mcp.json overlay.
type Registry struct {
	runner      claudecli.Runner
	projectPath string
}

// Option configures a Registry.
type Option func(*Registry)

// WithProjectPath sets the project directory whose .mcp.json overlay is used.
func WithProjectPath(path string) Option {
	return func(r *Registry) {
		r.projectPath = path
	}
}

// New creates a Registry. The project path defaults to the current working
// directory.
func New(runner claudecli.Runner, opts ...Option) *Registry {
	r := &Registry{runner: runner}
	for _, opt := range opts {
		opt(r)
	}
	if r.projectPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		r.projectPath = cwd
	}
	return r
}

// run executes one claude mcp subcommand and returns its stdout. A non-zero
// exit becomes a ProcessError carrying the combined output.
func (r *Registry) run(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, exitCode, err := r.runner.Run(ctx, args...)
	if err != nil {
		return "", err
	}
	if exitCode != 0 {
		return "", newProcessError(stdout, stderr, exitCode)
	}
	return stdout, nil
}

// applyOverlay merges the sidecar overlay onto a live record. Only the
// disabled flag crosses over; everything else stays as claude reported it.
func applyOverlay(record ServerRecord, config *ProjectConfig) ServerRecord {
	if entry, ok := config.MCPServers[record.Name]; ok {
		record.Disabled = entry.Disabled
	}
	return record
}

// readOverlay loads the project config for merging. A broken sidecar only
// degrades the overlay (disabled flags read as false), it does not fail the
// live operation.
func (r *Registry) readOverlay(ctx context.Context) *ProjectConfig {
	config, err := ReadProjectConfig(r.projectPath)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to read project config, treating all servers as enabled")
		return NewProjectConfig()
	}
	return config
}

// Add registers a new server with claude. Validation problems (stdio without
// a command, sse without a url) come back as an unsuccessful AddResult rather
// than an error; process failures do too, with claude's message.
func (r *Registry) Add(ctx context.Context, req AddRequest) (*AddResult, error) {
	log := logger.G(ctx).WithField("name", req.Name).WithField("transport", req.Transport)
	log.Info("adding MCP server")

	args, result := buildAddArgs(req)
	if result != nil {
		return result, nil
	}

	output, err := r.run(ctx, args...)
	if err != nil {
		log.WithError(err).Error("failed to add MCP server")
		return &AddResult{Success: false, Message: err.Error()}, nil
	}

	return &AddResult{
		Success:    true,
		Message:    strings.TrimSpace(output),
		ServerName: req.Name,
	}, nil
}

// buildAddArgs constructs the `claude mcp add` invocation. It returns a
// failed AddResult instead of args when the request is invalid.
func buildAddArgs(req AddRequest) ([]string, *AddResult) {
	args := []string{"add", "-s", string(req.Scope)}

	if req.Transport == TransportSSE {
		args = append(args, "--transport", "sse")
	}

	// Sorted for a deterministic invocation; claude does not care about
	// flag order.
	keys := make([]string, 0, len(req.Env))
	for k := range req.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", fmt.Sprintf("%s=%s", k, req.Env[k]))
	}

	args = append(args, req.Name)

	switch req.Transport {
	case TransportSSE:
		if req.URL == "" {
			return nil, &AddResult{Success: false, Message: "URL is required for SSE transport"}
		}
		args = append(args, req.URL)
	default:
		if req.Command == "" {
			return nil, &AddResult{Success: false, Message: "Command is required for stdio transport"}
		}
		// The separator keeps claude from parsing dashed commands or args as
		// its own flags.
		if len(req.Args) > 0 || strings.Contains(req.Command, "-") {
			args = append(args, "--")
		}
		args = append(args, req.Command)
		args = append(args, req.Args...)
	}

	return args, nil
}

// AddJSON registers a server from a raw JSON config via `claude mcp add-json`.
func (r *Registry) AddJSON(ctx context.Context, name, jsonConfig string, scope Scope) (*AddResult, error) {
	log := logger.G(ctx).WithField("name", name).WithField("scope", scope)
	log.Info("adding MCP server from JSON")

	output, err := r.run(ctx, "add-json", name, jsonConfig, "-s", string(scope))
	if err != nil {
		log.WithError(err).Error("failed to add MCP server from JSON")
		return &AddResult{Success: false, Message: err.Error()}, nil
	}

	return &AddResult{
		Success:    true,
		Message:    strings.TrimSpace(output),
		ServerName: name,
	}, nil
}

// List returns all servers claude reports, with the sidecar's disabled flags
// merged in.
func (r *Registry) List(ctx context.Context) ([]ServerRecord, error) {
	output, err := r.run(ctx, "list")
	if err != nil {
		return nil, err
	}

	config := r.readOverlay(ctx)

	records := ParseListOutput(output)
	for i := range records {
		records[i] = applyOverlay(records[i], config)
	}

	logger.G(ctx).WithField("count", len(records)).Debug("listed MCP servers")
	return records, nil
}

// Get returns full details for one named server, with the sidecar's disabled
// flag merged in.
func (r *Registry) Get(ctx context.Context, name string) (*ServerRecord, error) {
	output, err := r.run(ctx, "get", name)
	if err != nil {
		return nil, err
	}

	record := applyOverlay(*ParseDetailOutput(name, output), r.readOverlay(ctx))
	return &record, nil
}

// Remove unregisters a server from claude. The sidecar entry, if any, is left
// in place; it only tracks disabled intent and is removed by explicit edit.
func (r *Registry) Remove(ctx context.Context, name string) (string, error) {
	logger.G(ctx).WithField("name", name).Info("removing MCP server")

	output, err := r.run(ctx, "remove", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// ToggleDisabled flips a server's disabled flag in the sidecar file. If the
// server has no entry yet, one is synthesized from `claude mcp get` output,
// or minimally (empty command) when the lookup fails: the flag tracks intent
// and must not depend on command metadata being resolvable. Repeated toggles
// to the same value are idempotent.
func (r *Registry) ToggleDisabled(ctx context.Context, name string, disabled bool) (string, error) {
	log := logger.G(ctx).WithField("name", name).WithField("disabled", disabled)
	log.Info("toggling MCP server disabled state")

	config, err := ReadProjectConfig(r.projectPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to read project config")
	}

	if entry, ok := config.MCPServers[name]; ok {
		entry.Disabled = disabled
		config.MCPServers[name] = entry
	} else {
		config.MCPServers[name] = r.synthesizeEntry(ctx, name, disabled)
	}

	if err := SaveProjectConfig(r.projectPath, config); err != nil {
		return "", errors.Wrap(err, "failed to save project config")
	}

	state := "enabled"
	if disabled {
		state = "disabled"
	}
	return fmt.Sprintf("Server '%s' has been %s", name, state), nil
}

// synthesizeEntry builds a sidecar entry for a server not yet tracked,
// pulling command and args from a live get when possible.
func (r *Registry) synthesizeEntry(ctx context.Context, name string, disabled bool) ServerConfigEntry {
	entry := ServerConfigEntry{
		Args:     []string{},
		Env:      map[string]string{},
		Disabled: disabled,
	}

	output, err := r.run(ctx, "get", name)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("name", name).Info("could not fetch server details, creating minimal config entry")
		return entry
	}

	record := ParseDetailOutput(name, output)
	if parts := strings.Fields(record.Command); len(parts) > 0 {
		entry.Command = parts[0]
		entry.Args = parts[1:]
	}
	return entry
}

// TestConnection checks whether claude can resolve the named server.
func (r *Registry) TestConnection(ctx context.Context, name string) (string, error) {
	if _, err := r.run(ctx, "get", name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Connection to %s successful", name), nil
}

// ResetProjectChoices clears claude's remembered approvals for
// project-scoped servers.
func (r *Registry) ResetProjectChoices(ctx context.Context) (string, error) {
	output, err := r.run(ctx, "reset-project-choices")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
