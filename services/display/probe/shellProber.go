package probe

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	shellBinary = "/bin/sh"
	waitDelay   = time.Second
)

var log = logger.GetOrCreate("probe")

type shellProber struct {
	timeout time.Duration
}

// NewShellProber creates a prober that runs the metric command through the system shell.
// Every command is killed if it runs longer than the provided timeout.
func NewShellProber(timeout time.Duration) *shellProber {
	return &shellProber{
		timeout: timeout,
	}
}

// Probe runs the metric's command and returns its standard output
func (p *shellProber) Probe(ctx context.Context, definition common.MetricDefinition) (string, error) {
	if len(strings.TrimSpace(definition.Command)) == 0 {
		return "", errors.New("empty command")
	}

	cmdCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, shellBinary, "-c", definition.Command)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	out, err := cmd.Output()
	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		return "", cmdCtx.Err()
	}
	if err != nil {
		return "", &errCommandFailed{
			command: definition.Command,
			output:  strings.TrimSpace(stderr.String()),
			err:     err,
		}
	}

	log.Trace("shell probe finished", "metric", definition.Key, "bytes", len(out))

	return string(out), nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *shellProber) IsInterfaceNil() bool {
	return p == nil
}
