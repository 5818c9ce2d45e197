package pages

import "github.com/iulianpascalau/oled-monitoring/services/display/common"

// Surface is the drawing capability the pages render into. Coordinates are inclusive pixels.
type Surface interface {
	ClearRect(x0, y0, x1, y1 int)
	DrawText(x, y int, text string)
	DrawLine(x0, y0, x1, y1 int)
	// DrawRect draws the outline and either fills the interior or clears it
	DrawRect(x0, y0, x1, y1 int, filled bool)
	MeasureText(text string) (int, int)
	Width() int
	Height() int
	IsInterfaceNil() bool
}

// MetricCatalog exposes the metric properties needed while validating the page set
type MetricCatalog interface {
	Has(key common.MetricKey) bool
	IsChartable(key common.MetricKey) bool
	Activate(key common.MetricKey) error
	IsInterfaceNil() bool
}

// MetricReader exposes the metric values needed while rendering
type MetricReader interface {
	LastValue(key common.MetricKey) string
	Text(key common.MetricKey) string
	History(key common.MetricKey) []float64
	IsInterfaceNil() bool
}

// Page renders one screen worth of metrics
type Page interface {
	Name() string
	Kind() common.PageKind
	Metrics() []common.MetricKey
	// Validate checks the page against the metric catalog. Any error is a configuration error.
	Validate(catalog MetricCatalog) error
	Render(surface Surface, reader MetricReader) error
}
