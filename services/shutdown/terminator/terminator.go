package terminator

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("terminator")

// ArgsTerminator is the DTO used to create a new terminator
type ArgsTerminator struct {
	Processes    ProcessTable
	Blanker      PanelBlanker
	Signature    string
	WaitTimeout  time.Duration
	PollInterval time.Duration
}

type terminator struct {
	processes    ProcessTable
	blanker      PanelBlanker
	signature    string
	waitTimeout  time.Duration
	pollInterval time.Duration
}

// NewTerminator creates a new terminator instance
func NewTerminator(args ArgsTerminator) (*terminator, error) {
	if check.IfNil(args.Processes) {
		return nil, errors.New("nil process table")
	}
	if check.IfNil(args.Blanker) {
		return nil, errors.New("nil panel blanker")
	}
	if len(args.Signature) == 0 {
		return nil, errors.New("empty process signature")
	}
	if args.WaitTimeout < 0 {
		return nil, fmt.Errorf("invalid wait timeout %v", args.WaitTimeout)
	}
	if args.PollInterval <= 0 {
		return nil, fmt.Errorf("invalid poll interval %v", args.PollInterval)
	}

	return &terminator{
		processes:    args.Processes,
		blanker:      args.Blanker,
		signature:    args.Signature,
		waitTimeout:  args.WaitTimeout,
		pollInterval: args.PollInterval,
	}, nil
}

// Terminate sends SIGTERM to every display process, waits for them to exit and blanks the panel.
// The panel is blanked also when no process is found, in which case ErrProcessNotFound is returned.
// A process that outlives the wait timeout leaves the panel untouched.
func (t *terminator) Terminate(ctx context.Context) error {
	pids, err := t.processes.FindByCommandLine(ctx, t.signature)
	if err != nil {
		return fmt.Errorf("listing the processes: %w", err)
	}

	if len(pids) == 0 {
		log.Info("no display process found", "signature", t.signature)

		err = t.blank()
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: %s", ErrProcessNotFound, t.signature)
	}

	for _, pid := range pids {
		err = t.processes.Signal(ctx, pid, syscall.SIGTERM)
		if err != nil {
			running, _ := t.processes.IsRunning(ctx, pid)
			if running {
				return fmt.Errorf("sending SIGTERM to pid %d: %w", pid, err)
			}
		}

		log.Info("shutdown signal sent to the display process", "pid", pid)
	}

	err = t.waitForExit(ctx, pids)
	if err != nil {
		return err
	}

	return t.blank()
}

func (t *terminator) waitForExit(ctx context.Context, pids []int32) error {
	deadline := time.Now().Add(t.waitTimeout)
	remaining := pids

	for {
		stillRunning := make([]int32, 0, len(remaining))
		for _, pid := range remaining {
			running, err := t.processes.IsRunning(ctx, pid)
			if err != nil {
				return fmt.Errorf("checking pid %d: %w", pid, err)
			}
			if running {
				stillRunning = append(stillRunning, pid)
			}
		}

		remaining = stillRunning
		if len(remaining) == 0 {
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w: pids %v after %v", ErrProcessStillRunning, remaining, t.waitTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.pollInterval):
		}
	}
}

func (t *terminator) blank() error {
	err := t.blanker.Blank()
	if err != nil {
		return fmt.Errorf("blanking the panel: %w", err)
	}

	log.Info("blanked out the OLED panel")

	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (t *terminator) IsInterfaceNil() bool {
	return t == nil
}
