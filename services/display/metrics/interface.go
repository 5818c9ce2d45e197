package metrics

import (
	"context"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

// Prober defines the capability of producing the raw text record of a metric
type Prober interface {
	// Probe runs the metric probe synchronously and returns its text output
	Probe(ctx context.Context, definition common.MetricDefinition) (string, error)
	IsInterfaceNil() bool
}
