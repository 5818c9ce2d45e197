package terminator

import (
	"context"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTable(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("sleep", "271.828")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	ctx := context.Background()
	table := NewProcessTable()
	assert.False(t, table.IsInterfaceNil())

	pids, err := table.FindByCommandLine(ctx, "SLEEP 271.828")
	require.NoError(t, err)
	assert.Equal(t, []int32{int32(cmd.Process.Pid)}, pids)

	running, err := table.IsRunning(ctx, int32(cmd.Process.Pid))
	require.NoError(t, err)
	assert.True(t, running)

	err = table.Signal(ctx, int32(cmd.Process.Pid), syscall.SIGTERM)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		running, _ = table.IsRunning(ctx, int32(cmd.Process.Pid))
		return !running
	}, 5*time.Second, 10*time.Millisecond)
}

func TestProcessTable_FindByCommandLineSkipsItself(t *testing.T) {
	t.Parallel()

	table := NewProcessTable()
	pids, err := table.FindByCommandLine(context.Background(), os.Args[0])
	require.NoError(t, err)
	assert.NotContains(t, pids, int32(os.Getpid()))
}
