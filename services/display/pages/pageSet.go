package pages

import (
	"fmt"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/iulianpascalau/oled-monitoring/services/display/config"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("pages")

// pageSet is the ordered, cyclic page rotation
type pageSet struct {
	pages []Page
	index int
}

// NewPageSet builds every configured page, validates it against the catalog and activates its metrics.
// Any invalid page aborts the whole build.
func NewPageSet(configs []config.PageConfig, catalog MetricCatalog) (*pageSet, error) {
	if check.IfNil(catalog) {
		return nil, fmt.Errorf("%w: nil metric catalog", common.ErrConfiguration)
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: no pages configured", common.ErrConfiguration)
	}

	set := &pageSet{
		pages: make([]Page, 0, len(configs)),
	}
	for _, cfg := range configs {
		page, err := newPage(cfg)
		if err != nil {
			return nil, err
		}

		err = page.Validate(catalog)
		if err != nil {
			return nil, err
		}

		set.pages = append(set.pages, page)
	}

	for _, page := range set.pages {
		for _, key := range page.Metrics() {
			err := catalog.Activate(key)
			if err != nil {
				return nil, err
			}
		}

		log.Debug("page configured", "name", page.Name(), "kind", page.Kind(), "metrics", len(page.Metrics()))
	}

	return set, nil
}

func newPage(cfg config.PageConfig) (Page, error) {
	keys := make([]common.MetricKey, 0, len(cfg.Metrics))
	for _, m := range cfg.Metrics {
		keys = append(keys, common.MetricKey(m))
	}

	if cfg.HighFromTotalMemory && cfg.High != nil {
		return nil, configError(cfg.Name, "cannot set both high and high from total memory")
	}

	switch common.PageKind(cfg.Type) {
	case common.PageText:
		return NewTextPage(cfg.Name, keys), nil
	case common.PageChart:
		return NewChartPage(ArgsChartPage{
			Name:    cfg.Name,
			Metrics: keys,
			Chart:   common.ChartKind(cfg.Chart),
			Low:     cfg.Low,
			High:    cfg.High,
		}), nil
	case common.PageMeter:
		if cfg.Low == nil || cfg.High == nil {
			return nil, configError(cfg.Name, "meter requires both low and high")
		}

		return NewMeterPage(ArgsMeterPage{
			Name:    cfg.Name,
			Metrics: keys,
			Low:     *cfg.Low,
			High:    *cfg.High,
			Boxes:   cfg.Boxes,
			Warning: cfg.Warning,
		}), nil
	default:
		return nil, configError(cfg.Name, fmt.Sprintf("has unknown page type %q", cfg.Type))
	}
}

// Current returns the page due to be rendered
func (set *pageSet) Current() Page {
	return set.pages[set.index]
}

// Advance moves to the next page, wrapping around after the last one
func (set *pageSet) Advance() {
	set.index = (set.index + 1) % len(set.pages)
}

// Index returns the position of the current page
func (set *pageSet) Index() int {
	return set.index
}

// Len returns the number of pages
func (set *pageSet) Len() int {
	return len(set.pages)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (set *pageSet) IsInterfaceNil() bool {
	return set == nil
}
