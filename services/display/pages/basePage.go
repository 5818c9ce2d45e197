package pages

import (
	"errors"
	"fmt"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// basePage holds what every page kind shares: a name and the metrics printed on top of the screen
type basePage struct {
	name    string
	metrics []common.MetricKey
}

// Name returns the page label
func (page *basePage) Name() string {
	return page.name
}

// Metrics returns a copy of the metrics displayed by the page
func (page *basePage) Metrics() []common.MetricKey {
	return append([]common.MetricKey(nil), page.metrics...)
}

func (page *basePage) validate(catalog MetricCatalog) error {
	if check.IfNil(catalog) {
		return fmt.Errorf("%w: nil metric catalog", common.ErrConfiguration)
	}
	if len(page.metrics) == 0 {
		return configError(page.name, "must have at least 1 performance metric")
	}

	for _, key := range page.metrics {
		if !catalog.Has(key) {
			return configError(page.name, fmt.Sprintf("metric %q is not defined in the metric catalog", key))
		}
	}

	return nil
}

// validateSingleChartable checks the single-metric rule of the chart and meter pages
func (page *basePage) validateSingleChartable(catalog MetricCatalog, kind common.PageKind) error {
	err := page.validate(catalog)
	if err != nil {
		return err
	}
	if len(page.metrics) > 1 {
		return configError(page.name, fmt.Sprintf("is a %s page, which cannot contain more than 1 performance metric", kind))
	}
	if !catalog.IsChartable(page.metrics[0]) {
		return configError(page.name, fmt.Sprintf("performance metric %q must be chartable", page.metrics[0]))
	}

	return nil
}

// drawText clears the screen and prints one metric per line, from the top
func (page *basePage) drawText(surface Surface, reader MetricReader, layout common.Layout) {
	surface.ClearRect(layout.ScreenLeft, layout.ScreenTop, layout.ScreenRight, layout.ScreenBottom)

	row := layout.ScreenTop
	for _, key := range page.metrics {
		surface.DrawText(layout.ScreenLeft, row, reader.Text(key))
		row += layout.TextHeight
	}
}

func checkRenderArgs(surface Surface, reader MetricReader) error {
	if check.IfNil(surface) {
		return errors.New("nil surface")
	}
	if check.IfNil(reader) {
		return errors.New("nil metric reader")
	}

	return nil
}

func configError(pageName string, message string) error {
	return fmt.Errorf("%w: %q %s", common.ErrConfiguration, pageName, message)
}
