package factory

import (
	"context"
	"image"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

// Panel is the display the frames are pushed to
type Panel interface {
	Width() int
	Height() int
	SetPixelBuffer(img image.Image) error
	Present() error
	Close() error
	IsInterfaceNil() bool
}

// Scheduler drives the page rotation until the context is done
type Scheduler interface {
	Run(ctx context.Context) error
	IsInterfaceNil() bool
}

// MetricStore holds the probed values of the active metrics
type MetricStore interface {
	RefreshAll(ctx context.Context) int
	LastValue(key common.MetricKey) string
	Text(key common.MetricKey) string
	History(key common.MetricKey) []float64
	ActiveKeys() []common.MetricKey
	IsInterfaceNil() bool
}
