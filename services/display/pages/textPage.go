package pages

import (
	"fmt"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
)

const maxTextLines = 3

type textPage struct {
	basePage
}

// NewTextPage creates a page that prints up to 3 metrics, one per line
func NewTextPage(name string, metrics []common.MetricKey) *textPage {
	return &textPage{
		basePage: basePage{
			name:    name,
			metrics: append([]common.MetricKey(nil), metrics...),
		},
	}
}

// Kind returns the text page kind
func (page *textPage) Kind() common.PageKind {
	return common.PageText
}

// Validate requires between 1 and 3 defined metrics
func (page *textPage) Validate(catalog MetricCatalog) error {
	err := page.validate(catalog)
	if err != nil {
		return err
	}
	if len(page.metrics) > maxTextLines {
		return configError(page.name, fmt.Sprintf("text page must have between 1-%d performance metrics. "+
			"Try breaking them up into multiple pages", maxTextLines))
	}

	return nil
}

// Render prints the metric lines
func (page *textPage) Render(surface Surface, reader MetricReader) error {
	err := checkRenderArgs(surface, reader)
	if err != nil {
		return err
	}

	page.drawText(surface, reader, layoutFor(surface))

	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (page *textPage) IsInterfaceNil() bool {
	return page == nil
}
