package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("sse servers are not probed", func(t *testing.T) {
		record := &ServerRecord{Name: "events", Transport: TransportSSE, URL: "https://example.com/sse"}
		status := CheckStatus(ctx, record)
		assert.False(t, status.Running)
		assert.NotZero(t, status.LastChecked)
	})

	t.Run("empty command is not probed", func(t *testing.T) {
		record := &ServerRecord{Name: "bare", Transport: TransportStdio}
		status := CheckStatus(ctx, record)
		assert.False(t, status.Running)
		assert.NotZero(t, status.LastChecked)
	})

	t.Run("finds the current process by name", func(t *testing.T) {
		exe, err := os.Executable()
		require.NoError(t, err)

		record := &ServerRecord{Name: "self", Transport: TransportStdio, Command: filepath.Base(exe) + " --flag"}
		status := CheckStatus(ctx, record)
		assert.True(t, status.Running)
	})

	t.Run("unknown command reports not running", func(t *testing.T) {
		record := &ServerRecord{Name: "ghost", Transport: TransportStdio, Command: "definitely-not-a-real-process-name"}
		status := CheckStatus(ctx, record)
		assert.False(t, status.Running)
		assert.Empty(t, status.Error)
	})
}
