package registry

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ProcessError is returned when a claude mcp invocation exits non-zero. The
// message carries the combined stdout and stderr, trimmed, since claude
// writes diagnostics to either stream depending on the subcommand.
type ProcessError struct {
	ExitCode int
	Output   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("claude mcp command failed: %s", e.Output)
}

func newProcessError(stdout, stderr string, exitCode int) *ProcessError {
	combined := strings.TrimSpace(stdout)
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		if combined != "" {
			combined = combined + "\n" + trimmed
		} else {
			combined = trimmed
		}
	}
	return &ProcessError{ExitCode: exitCode, Output: combined}
}

// ConfigParseError is returned when the .mcp.json sidecar exists but does not
// contain valid JSON matching the expected schema. An absent file is not an
// error.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// IsProcessError reports whether err is (or wraps) a ProcessError.
func IsProcessError(err error) bool {
	var pe *ProcessError
	return errors.As(err, &pe)
}
