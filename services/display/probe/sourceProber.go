package probe

import (
	"context"
	"errors"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// Prober is able to produce the raw text record of a metric
type Prober interface {
	Probe(ctx context.Context, definition common.MetricDefinition) (string, error)
	IsInterfaceNil() bool
}

type sourceProber struct {
	shell Prober
	host  Prober
}

// NewSourceProber creates a prober that routes every metric to the prober of its source
// and applies the metric's JSON field extraction, if any
func NewSourceProber(shell Prober, host Prober) (*sourceProber, error) {
	if check.IfNil(shell) {
		return nil, errors.New("nil shell prober")
	}
	if check.IfNil(host) {
		return nil, errors.New("nil host prober")
	}

	return &sourceProber{
		shell: shell,
		host:  host,
	}, nil
}

// Probe fetches the metric record from the prober matching the metric source
func (p *sourceProber) Probe(ctx context.Context, definition common.MetricDefinition) (string, error) {
	var prober Prober
	switch definition.Source {
	case common.SourceShell, "":
		prober = p.shell
	case common.SourceHost:
		prober = p.host
	default:
		return "", errUnknownSource(definition.Source)
	}

	output, err := prober.Probe(ctx, definition)
	if err != nil {
		return "", err
	}
	if len(definition.JSONFields) == 0 {
		return output, nil
	}

	return extractFields(output, definition.JSONFields)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *sourceProber) IsInterfaceNil() bool {
	return p == nil
}
