package terminator

import (
	"context"
	"image"
	"syscall"
)

// ProcessTable can look up, signal and watch the running processes
type ProcessTable interface {
	// FindByCommandLine returns the pids whose command line contains the signature, case-insensitive
	FindByCommandLine(ctx context.Context, signature string) ([]int32, error)
	Signal(ctx context.Context, pid int32, sig syscall.Signal) error
	// IsRunning returns false once the process exited, zombies included
	IsRunning(ctx context.Context, pid int32) (bool, error)
	IsInterfaceNil() bool
}

// PanelBlanker force-blanks the display
type PanelBlanker interface {
	Blank() error
	IsInterfaceNil() bool
}

// Panel is the display reopened by the blanker
type Panel interface {
	Width() int
	Height() int
	SetPixelBuffer(img image.Image) error
	Present() error
	Close() error
	IsInterfaceNil() bool
}
