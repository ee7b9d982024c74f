// Package claudecli locates the external claude binary and executes its
// `claude mcp` subcommands. Desktop installs often run with a minimal PATH,
// so discovery checks well-known install locations when LookPath fails, and
// child processes get an explicit allow-listed environment instead of the
// full ambient one.
package claudecli

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/penumbra-labs/mcpctl/pkg/logger"
)

const binaryName = "claude"

// DefaultEnvPassthrough is the set of environment variables forwarded to the
// claude binary. PATH and locale are needed for the binary itself, the Node
// entries because claude is commonly an npm install, and the proxy entries so
// registry lookups work behind corporate proxies. Prefix entries (trailing
// "*") match any variable with that prefix.
var DefaultEnvPassthrough = []string{
	"PATH",
	"HOME",
	"USER",
	"SHELL",
	"LANG",
	"LC_*",
	"NODE_PATH",
	"NVM_DIR",
	"NVM_BIN",
	"HOMEBREW_PREFIX",
	"HOMEBREW_CELLAR",
	"HTTP_PROXY",
	"HTTPS_PROXY",
	"NO_PROXY",
	"ALL_PROXY",
}

// FindBinary resolves the path to the claude binary. An explicit path wins,
// then $PATH, then well-known install locations.
func FindBinary(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, "configured claude binary %q not found", explicit)
		}
		return explicit, nil
	}

	if path, err := exec.LookPath(binaryName); err == nil {
		return path, nil
	}

	for _, dir := range wellKnownBinDirs() {
		candidate := filepath.Join(dir, binaryName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("claude binary not found in PATH or known install locations; set claude.binary in the config file")
}

func wellKnownBinDirs() []string {
	dirs := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".local", "bin"),
			filepath.Join(home, ".claude", "local"),
			filepath.Join(home, "bin"),
		)
		dirs = append(dirs, nvmBinDirs(home)...)
	}

	dirs = append(dirs,
		"/opt/homebrew/bin",
		"/usr/local/bin",
		"/usr/bin",
	)

	return dirs
}

// nvmBinDirs returns node bin directories under ~/.nvm, newest version first.
func nvmBinDirs(home string) []string {
	versionsDir := filepath.Join(home, ".nvm", "versions", "node")
	entries, err := os.ReadDir(versionsDir)
	if err != nil {
		return nil
	}

	versions := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(versions)))

	dirs := make([]string, 0, len(versions))
	for _, v := range versions {
		dirs = append(dirs, filepath.Join(versionsDir, v, "bin"))
	}
	return dirs
}

// BuildEnv filters the given environment (KEY=VALUE pairs) down to the
// allow-list. Entries ending in "*" match by prefix.
func BuildEnv(environ []string, allowList []string) []string {
	prefixes := []string{}
	exact := map[string]bool{}
	for _, entry := range allowList {
		if strings.HasSuffix(entry, "*") {
			prefixes = append(prefixes, strings.TrimSuffix(entry, "*"))
		} else {
			exact[entry] = true
		}
	}

	filtered := []string{}
	for _, kv := range environ {
		key, _, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if exact[key] {
			filtered = append(filtered, kv)
			continue
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				filtered = append(filtered, kv)
				break
			}
		}
	}
	return filtered
}

// Runner executes one `claude mcp` subcommand to completion and reports the
// captured output and exit status. A non-zero exit is not an error at this
// layer; callers decide what failure means.
type Runner interface {
	Run(ctx context.Context, args ...string) (stdout, stderr string, exitCode int, err error)
}

// ExecRunner runs the real claude binary via os/exec.
type ExecRunner struct {
	binaryPath     string
	envPassthrough []string
}

// NewExecRunner creates a Runner for the claude binary at binaryPath. If
// allowList is nil, DefaultEnvPassthrough is used.
func NewExecRunner(binaryPath string, allowList []string) *ExecRunner {
	if allowList == nil {
		allowList = DefaultEnvPassthrough
	}
	return &ExecRunner{
		binaryPath:     binaryPath,
		envPassthrough: allowList,
	}
}

// Run executes `claude mcp <args...>` and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, string, int, error) {
	fullArgs := append([]string{"mcp"}, args...)
	logger.G(ctx).WithField("binary", r.binaryPath).WithField("args", fullArgs).Debug("executing claude mcp command")

	cmd := exec.CommandContext(ctx, r.binaryPath, fullArgs...)
	cmd.Env = BuildEnv(os.Environ(), r.envPassthrough)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			err = nil
		} else {
			return "", "", -1, errors.Wrap(err, "failed to execute claude command")
		}
	}

	return stdout.String(), stderr.String(), exitCode, nil
}

// Serve starts `claude mcp serve` detached and returns without waiting. The
// spawned server keeps running after mcpctl exits.
func (r *ExecRunner) Serve(ctx context.Context) error {
	logger.G(ctx).WithField("binary", r.binaryPath).Info("starting claude mcp serve")

	cmd := exec.Command(r.binaryPath, "mcp", "serve")
	cmd.Env = BuildEnv(os.Environ(), r.envPassthrough)
	cmd.Dir = os.TempDir()

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start claude mcp serve")
	}

	// Reap the child in the background so it doesn't linger as a zombie while
	// mcpctl is still running.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
