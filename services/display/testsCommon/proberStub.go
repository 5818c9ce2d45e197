package testsCommon

import (
	"context"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

// ProberStub -
type ProberStub struct {
	ProbeHandler func(ctx context.Context, definition common.MetricDefinition) (string, error)
}

// Probe -
func (stub *ProberStub) Probe(ctx context.Context, definition common.MetricDefinition) (string, error) {
	if stub.ProbeHandler != nil {
		return stub.ProbeHandler(ctx, definition)
	}

	return "", nil
}

// IsInterfaceNil -
func (stub *ProberStub) IsInterfaceNil() bool {
	return stub == nil
}
