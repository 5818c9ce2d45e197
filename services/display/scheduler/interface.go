package scheduler

import (
	"context"
	"image"

	"github.com/iulianpascalau/oled-monitoring/services/display/pages"
)

// MetricRefresher re-probes every active metric
type MetricRefresher interface {
	// RefreshAll fetches every active metric and returns the number of failures
	RefreshAll(ctx context.Context) int
	IsInterfaceNil() bool
}

// PageRotation is the cyclic page sequence
type PageRotation interface {
	Current() pages.Page
	Advance()
	Len() int
	IsInterfaceNil() bool
}

// FrameSurface is the drawing surface backed by a full frame buffer
type FrameSurface interface {
	pages.Surface
	Clear()
	Image() image.Image
}

// Panel is the physical display
type Panel interface {
	Width() int
	Height() int
	SetPixelBuffer(img image.Image) error
	// Present pushes the pixel buffer to the hardware
	Present() error
	IsInterfaceNil() bool
}
