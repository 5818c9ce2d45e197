package testsCommon

import (
	"context"
	"syscall"
)

// ProcessTableStub -
type ProcessTableStub struct {
	FindByCommandLineHandler func(ctx context.Context, signature string) ([]int32, error)
	SignalHandler            func(ctx context.Context, pid int32, sig syscall.Signal) error
	IsRunningHandler         func(ctx context.Context, pid int32) (bool, error)
}

// FindByCommandLine -
func (stub *ProcessTableStub) FindByCommandLine(ctx context.Context, signature string) ([]int32, error) {
	if stub.FindByCommandLineHandler != nil {
		return stub.FindByCommandLineHandler(ctx, signature)
	}

	return nil, nil
}

// Signal -
func (stub *ProcessTableStub) Signal(ctx context.Context, pid int32, sig syscall.Signal) error {
	if stub.SignalHandler != nil {
		return stub.SignalHandler(ctx, pid, sig)
	}

	return nil
}

// IsRunning -
func (stub *ProcessTableStub) IsRunning(ctx context.Context, pid int32) (bool, error) {
	if stub.IsRunningHandler != nil {
		return stub.IsRunningHandler(ctx, pid)
	}

	return false, nil
}

// IsInterfaceNil -
func (stub *ProcessTableStub) IsInterfaceNil() bool {
	return stub == nil
}
