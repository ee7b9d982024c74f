package registry

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/penumbra-labs/mcpctl/pkg/logger"
)

// CheckStatus probes whether a server's command appears among the live
// processes on this machine. The result is advisory only: claude spawns
// stdio servers on demand, so "not running" is normal, and a name collision
// can report a false positive. SSE servers are never probed, since
// reachability checks are out of scope.
func CheckStatus(ctx context.Context, record *ServerRecord) ServerStatus {
	status := ServerStatus{LastChecked: time.Now().Unix()}

	if record.Transport == TransportSSE || record.Command == "" {
		return status
	}

	parts := strings.Fields(record.Command)
	if len(parts) == 0 {
		return status
	}
	target := filepath.Base(parts[0])

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("failed to enumerate processes for status check")
		status.Error = err.Error()
		return status
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if name == target {
			status.Running = true
			break
		}
	}

	return status
}
