package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/iulianpascalau/oled-monitoring/services/display/config"
	"github.com/iulianpascalau/oled-monitoring/services/display/metrics"
	"github.com/iulianpascalau/oled-monitoring/services/display/pages"
	"github.com/iulianpascalau/oled-monitoring/services/display/panel"
	"github.com/iulianpascalau/oled-monitoring/services/display/probe"
	"github.com/iulianpascalau/oled-monitoring/services/display/scheduler"
	"github.com/iulianpascalau/oled-monitoring/services/display/surface"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("factory")

// ArgsComponentsHandler is the DTO used to create a new components handler
type ArgsComponentsHandler struct {
	Config config.Config
	Prober metrics.Prober
	Panel  Panel
	// TotalMemoryGiB resolves the bound of the pages configured with HighFromTotalMemory
	TotalMemoryGiB func(ctx context.Context) (float64, error)
}

type componentsHandler struct {
	store     MetricStore
	pageSet   scheduler.PageRotation
	panel     Panel
	scheduler Scheduler
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(args ArgsComponentsHandler) (*componentsHandler, error) {
	if check.IfNil(args.Prober) {
		return nil, errors.New("nil prober")
	}
	if check.IfNil(args.Panel) {
		return nil, errors.New("nil panel")
	}
	if args.TotalMemoryGiB == nil {
		return nil, errors.New("nil total memory handler")
	}

	cfg := args.Config
	if args.Panel.Width() != cfg.Panel.Width || args.Panel.Height() != cfg.Panel.Height {
		return nil, fmt.Errorf("%w: panel is %dx%d, configuration expects %dx%d", common.ErrConfiguration,
			args.Panel.Width(), args.Panel.Height(), cfg.Panel.Width, cfg.Panel.Height)
	}

	store, err := metrics.NewMetricStore(metrics.ArgsMetricStore{
		Prober:   args.Prober,
		Catalog:  CreateCatalog(cfg.Metrics),
		Capacity: common.ChartCapacity(cfg.Panel.Width),
	})
	if err != nil {
		return nil, err
	}

	pageConfigs, err := resolvePageBounds(cfg.Pages, args.TotalMemoryGiB)
	if err != nil {
		return nil, err
	}

	set, err := pages.NewPageSet(pageConfigs, store)
	if err != nil {
		return nil, err
	}

	sched, err := scheduler.NewPageScheduler(scheduler.ArgsPageScheduler{
		Store:            store,
		Reader:           store,
		Pages:            set,
		Surface:          surface.NewCanvas(cfg.Panel.Width, cfg.Panel.Height, nil),
		Panel:            args.Panel,
		RefreshInterval:  time.Duration(cfg.RefreshIntervalInSeconds) * time.Second,
		RotationInterval: time.Duration(cfg.RotationIntervalInSeconds) * time.Second,
		SplashDuration:   time.Duration(cfg.SplashDurationInSeconds) * time.Second,
		SplashText:       cfg.SplashText,
		TickInterval:     time.Duration(cfg.TickIntervalInMillis) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("display components created", "pages", set.Len(), "active metrics", len(store.ActiveKeys()))

	return &componentsHandler{
		store:     store,
		pageSet:   set,
		panel:     args.Panel,
		scheduler: sched,
	}, nil
}

// CreateCatalog converts the configured metrics into probe definitions
func CreateCatalog(configs []config.MetricConfig) []common.MetricDefinition {
	catalog := make([]common.MetricDefinition, 0, len(configs))
	for _, cfg := range configs {
		catalog = append(catalog, common.MetricDefinition{
			Key:        common.MetricKey(cfg.Key),
			Source:     cfg.Source,
			Command:    cfg.Command,
			JSONFields: cfg.JSONFields,
			Format:     cfg.Format,
			Chartable:  cfg.Chartable,
		})
	}

	return catalog
}

func resolvePageBounds(configs []config.PageConfig, totalMemoryGiB func(ctx context.Context) (float64, error)) ([]config.PageConfig, error) {
	resolved := make([]config.PageConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.HighFromTotalMemory {
			if cfg.High != nil {
				return nil, fmt.Errorf("%w: page %q cannot set both high and high from total memory", common.ErrConfiguration, cfg.Name)
			}

			total, err := totalMemoryGiB(context.Background())
			if err != nil {
				return nil, fmt.Errorf("%w: page %q: reading the total memory: %w", common.ErrProbe, cfg.Name, err)
			}

			cfg.High = &total
			cfg.HighFromTotalMemory = false
			log.Debug("page bound set from the total memory", "page", cfg.Name, "high", total)
		}

		resolved = append(resolved, cfg)
	}

	return resolved, nil
}

// CreateProber creates the prober that routes every metric to the shell or to the host readings
func CreateProber(cfg config.Config) (metrics.Prober, error) {
	timeout := time.Duration(cfg.ProbeTimeoutInSeconds) * time.Second

	prober, err := probe.NewSourceProber(probe.NewShellProber(timeout), probe.NewHostProber())
	if err != nil {
		return nil, err
	}

	return prober, nil
}

// CreatePanel opens the SSD1306 panel or, when simulating, a console panel writing to the provided writer
func CreatePanel(cfg config.PanelConfig, simulate bool, writer io.Writer) (Panel, error) {
	if simulate {
		consolePanel, err := panel.NewConsolePanel(panel.ArgsConsolePanel{
			Writer: writer,
			Width:  cfg.Width,
			Height: cfg.Height,
			Redraw: true,
		})
		if err != nil {
			return nil, err
		}

		return consolePanel, nil
	}

	oledPanel, err := panel.NewSSD1306Panel(panel.ArgsSSD1306Panel{
		I2CBus: cfg.I2CBus,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return nil, err
	}

	return oledPanel, nil
}

// GetStore returns the metric store component
func (ch *componentsHandler) GetStore() MetricStore {
	return ch.store
}

// GetPages returns the page rotation component
func (ch *componentsHandler) GetPages() scheduler.PageRotation {
	return ch.pageSet
}

// GetScheduler returns the scheduler component
func (ch *componentsHandler) GetScheduler() Scheduler {
	return ch.scheduler
}

// Run blocks until the context is done or the panel fails
func (ch *componentsHandler) Run(ctx context.Context) error {
	return ch.scheduler.Run(ctx)
}

// Close closes the inner components
func (ch *componentsHandler) Close() error {
	return ch.panel.Close()
}
