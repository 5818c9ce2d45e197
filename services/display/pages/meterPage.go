package pages

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/iulianpascalau/oled-monitoring/services/display/metrics"
)

const (
	meterInset    = 3
	boxGap        = 3
	hatchStep     = 3
	warningMargin = 5
)

// ArgsMeterPage is the DTO used to create a meter page
type ArgsMeterPage struct {
	Name    string
	Metrics []common.MetricKey
	Low     float64
	High    float64
	Boxes   int
	// Warning marks the danger zone of the gauge. Zero disables the marker.
	Warning float64
}

type meterPage struct {
	basePage
	low     float64
	high    float64
	boxes   int
	warning float64
}

type meterBox struct {
	left   float64
	right  float64
	filled bool
}

// NewMeterPage creates a page that shows the current metric value as a segmented gauge
func NewMeterPage(args ArgsMeterPage) *meterPage {
	return &meterPage{
		basePage: basePage{
			name:    args.Name,
			metrics: append([]common.MetricKey(nil), args.Metrics...),
		},
		low:     args.Low,
		high:    args.High,
		boxes:   args.Boxes,
		warning: args.Warning,
	}
}

// Kind returns the meter page kind
func (page *meterPage) Kind() common.PageKind {
	return common.PageMeter
}

// Validate requires exactly one chartable metric, low < high and at least one box
func (page *meterPage) Validate(catalog MetricCatalog) error {
	err := page.validateSingleChartable(catalog, common.PageMeter)
	if err != nil {
		return err
	}
	if page.low >= page.high {
		return configError(page.name, "meter low must be less than meter high")
	}
	if page.boxes < 1 {
		return configError(page.name, "meter must have at least 1 box")
	}

	return nil
}

// Render prints the metric line, then the warning zone, if any, and the gauge boxes over it
func (page *meterPage) Render(surface Surface, reader MetricReader) error {
	err := checkRenderArgs(surface, reader)
	if err != nil {
		return err
	}

	value, err := currentValue(reader.LastValue(page.metrics[0]))
	if err != nil {
		return fmt.Errorf("%w: page %q: %w", common.ErrParse, page.name, err)
	}

	layout := layoutFor(surface)
	page.drawText(surface, reader, layout)
	surface.DrawRect(layout.ScreenLeft, layout.ChartTop, layout.ScreenRight, layout.ScreenBottom, false)

	if page.warning != 0 {
		page.drawWarning(surface, layout)
	}

	top := layout.ChartTop + meterInset
	bottom := layout.ScreenBottom - meterInset
	for _, box := range page.computeBoxes(layout, value) {
		surface.DrawRect(round(box.left), top, round(box.right), bottom, box.filled)
	}

	return nil
}

// currentValue parses the first record field as a number, dropping the fractional part
func currentValue(record string) (float64, error) {
	field := metrics.PrimaryField(record)
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("non finite value %q", field)
	}

	return math.Trunc(value), nil
}

// computeBoxes lays the boxes left to right. A box is filled once the value line reached its right edge.
func (page *meterPage) computeBoxes(layout common.Layout, value float64) []meterBox {
	left := float64(meterInset)
	right := float64(layout.ScreenRight - meterInset)
	pitch := (right - left) / float64(page.boxes)
	width := pitch - boxGap

	valueLine := interpolate(value, page.low, page.high, float64(layout.ScreenRight-1))

	boxes := make([]meterBox, 0, page.boxes)
	for i := 0; i < page.boxes; i++ {
		x := left + float64(i)*pitch
		boxes = append(boxes, meterBox{
			left:   x,
			right:  x + width,
			filled: valueLine >= x+width,
		})
	}

	return boxes
}

// drawWarning draws the threshold line and a diagonal hatch over the zone right of it
func (page *meterPage) drawWarning(surface Surface, layout common.Layout) {
	warningLine := round(interpolate(page.warning, page.low, page.high, float64(layout.ScreenRight-warningMargin)))
	surface.DrawLine(warningLine, layout.ChartTop, warningLine, layout.ScreenBottom)

	x1 := warningLine + hatchStep
	y1 := layout.ChartTop
	x2 := warningLine
	y2 := layout.ChartTop + hatchStep
	for x1 < layout.ScreenRight*2 {
		surface.DrawLine(x1, y1, x2, y2)
		x1 += hatchStep
		y2 += hatchStep
	}
}

// IsInterfaceNil returns true if the value under the interface is nil
func (page *meterPage) IsInterfaceNil() bool {
	return page == nil
}
