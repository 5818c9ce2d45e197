package pages

import (
	"fmt"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

// ArgsChartPage is the DTO used to create a chart page
type ArgsChartPage struct {
	Name    string
	Metrics []common.MetricKey
	Chart   common.ChartKind
	// Low and High fix the chart scale. A nil bound is taken from the history.
	Low  *float64
	High *float64
}

type chartPage struct {
	basePage
	chart common.ChartKind
	low   *float64
	high  *float64
}

// NewChartPage creates a page that plots the history of a chartable metric below its text line
func NewChartPage(args ArgsChartPage) *chartPage {
	return &chartPage{
		basePage: basePage{
			name:    args.Name,
			metrics: append([]common.MetricKey(nil), args.Metrics...),
		},
		chart: args.Chart,
		low:   copyBound(args.Low),
		high:  copyBound(args.High),
	}
}

func copyBound(bound *float64) *float64 {
	if bound == nil {
		return nil
	}

	value := *bound
	return &value
}

// Kind returns the chart page kind
func (page *chartPage) Kind() common.PageKind {
	return common.PageChart
}

// Validate requires exactly one chartable metric, a known chart kind and ordered fixed bounds
func (page *chartPage) Validate(catalog MetricCatalog) error {
	err := page.validateSingleChartable(catalog, common.PageChart)
	if err != nil {
		return err
	}

	switch page.chart {
	case common.ChartLine, common.ChartBar:
	default:
		return configError(page.name, fmt.Sprintf("has unknown chart type %q", page.chart))
	}

	if page.low != nil && page.high != nil && *page.low >= *page.high {
		return configError(page.name, "chart low must be less than chart high")
	}

	return nil
}

// Render prints the metric line, the chart border and the plotted history
func (page *chartPage) Render(surface Surface, reader MetricReader) error {
	err := checkRenderArgs(surface, reader)
	if err != nil {
		return err
	}

	layout := layoutFor(surface)
	page.drawText(surface, reader, layout)
	surface.DrawRect(layout.ScreenLeft, layout.ChartTop, layout.ScreenRight, layout.ScreenBottom, false)

	history := reader.History(page.metrics[0])
	valueMin, valueMax, ok := valueRange(history, page.low, page.high)
	if !ok {
		return nil
	}

	switch page.chart {
	case common.ChartLine:
		plotLine(surface, layout, history, valueMin, valueMax)
	case common.ChartBar:
		plotBars(surface, layout, history, valueMin, valueMax)
	}

	return nil
}

// plotLine walks the history from the right edge, joining consecutive samples 2 pixels apart
func plotLine(surface Surface, layout common.Layout, history []float64, valueMin float64, valueMax float64) {
	col := layout.ScreenRight - 2
	lastRow := 0
	for i, value := range history {
		row := round(mapToRow(value, valueMin, valueMax, layout.ChartTop, layout.ChartBottom))
		if i == 0 {
			lastRow = row
		}

		surface.DrawLine(col, row, col+2, lastRow)
		lastRow = row
		col -= 2
	}
}

// plotBars walks the history from the right edge, one vertical bar every 2 pixels
func plotBars(surface Surface, layout common.Layout, history []float64, valueMin float64, valueMax float64) {
	col := layout.ScreenRight
	for _, value := range history {
		row := round(mapToRow(value, valueMin, valueMax, layout.ChartTop, layout.ChartBottom))
		surface.DrawLine(col, row, col, layout.ScreenBottom)
		col -= 2
	}
}

// IsInterfaceNil returns true if the value under the interface is nil
func (page *chartPage) IsInterfaceNil() bool {
	return page == nil
}
