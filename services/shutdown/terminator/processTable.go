package terminator

import (
	"context"
	"os"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"
)

type processTable struct {
	ownPid int32
}

// NewProcessTable creates a process table over the host's processes. The caller's own process is never matched.
func NewProcessTable() *processTable {
	return &processTable{
		ownPid: int32(os.Getpid()),
	}
}

// FindByCommandLine returns the pids whose command line contains the signature, case-insensitive.
// Processes that vanish or deny access while being inspected are skipped.
func (table *processTable) FindByCommandLine(ctx context.Context, signature string) ([]int32, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(signature)
	pids := make([]int32, 0)
	for _, p := range procs {
		if p.Pid == table.ownPid {
			continue
		}

		cmdline, errCmd := p.CmdlineWithContext(ctx)
		if errCmd != nil || cmdline == "" {
			continue
		}

		if strings.Contains(strings.ToLower(cmdline), needle) {
			log.Debug("matching process found", "pid", p.Pid, "cmdline", cmdline)
			pids = append(pids, p.Pid)
		}
	}

	return pids, nil
}

// Signal sends the signal to the process
func (table *processTable) Signal(ctx context.Context, pid int32, sig syscall.Signal) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return err
	}

	return p.SendSignalWithContext(ctx, sig)
}

// IsRunning returns true while the process exists and is not a zombie
func (table *processTable) IsRunning(ctx context.Context, pid int32) (bool, error) {
	exists, err := process.PidExistsWithContext(ctx, pid)
	if err != nil || !exists {
		return false, err
	}

	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return false, nil
	}

	statuses, err := p.StatusWithContext(ctx)
	if err != nil {
		return true, nil
	}
	for _, status := range statuses {
		if status == process.Zombie {
			return false, nil
		}
	}

	return true, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (table *processTable) IsInterfaceNil() bool {
	return table == nil
}
