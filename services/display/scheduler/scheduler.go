package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/iulianpascalau/oled-monitoring/services/display/pages"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("scheduler")

// ArgsPageScheduler is the DTO used to create a new page scheduler
type ArgsPageScheduler struct {
	Store            MetricRefresher
	Reader           pages.MetricReader
	Pages            PageRotation
	Surface          FrameSurface
	Panel            Panel
	RefreshInterval  time.Duration
	RotationInterval time.Duration
	SplashDuration   time.Duration
	SplashText       string
	TickInterval     time.Duration
}

// pageScheduler drives the metric refresh and the page rotation from a single polling loop
type pageScheduler struct {
	store            MetricRefresher
	reader           pages.MetricReader
	pages            PageRotation
	surface          FrameSurface
	panel            Panel
	refreshInterval  time.Duration
	rotationInterval time.Duration
	splashDuration   time.Duration
	splashText       string
	tickInterval     time.Duration

	state        State
	lastRefresh  time.Time
	lastRotation time.Time
}

// NewPageScheduler creates a new scheduler instance, in the splash state
func NewPageScheduler(args ArgsPageScheduler) (*pageScheduler, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &pageScheduler{
		store:            args.Store,
		reader:           args.Reader,
		pages:            args.Pages,
		surface:          args.Surface,
		panel:            args.Panel,
		refreshInterval:  args.RefreshInterval,
		rotationInterval: args.RotationInterval,
		splashDuration:   args.SplashDuration,
		splashText:       args.SplashText,
		tickInterval:     args.TickInterval,
		state:            StateSplash,
	}, nil
}

func checkArgs(args ArgsPageScheduler) error {
	if check.IfNil(args.Store) {
		return errors.New("nil metric store")
	}
	if check.IfNil(args.Reader) {
		return errors.New("nil metric reader")
	}
	if check.IfNil(args.Pages) {
		return errors.New("nil page rotation")
	}
	if args.Pages.Len() == 0 {
		return errors.New("empty page rotation")
	}
	if check.IfNil(args.Surface) {
		return errors.New("nil surface")
	}
	if check.IfNil(args.Panel) {
		return errors.New("nil panel")
	}
	if args.RefreshInterval <= 0 {
		return fmt.Errorf("invalid refresh interval %v", args.RefreshInterval)
	}
	if args.RotationInterval <= 0 {
		return fmt.Errorf("invalid rotation interval %v", args.RotationInterval)
	}
	if args.TickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %v", args.TickInterval)
	}
	if args.SplashDuration < 0 {
		return fmt.Errorf("invalid splash duration %v", args.SplashDuration)
	}

	return nil
}

// Run fetches the initial data, shows the splash banner and then loops until the context is done
// or the panel fails. On context cancellation the panel is blanked before returning.
func (s *pageScheduler) Run(ctx context.Context) error {
	log.Debug("fetching initial metric values")
	s.store.RefreshAll(ctx)

	err := s.showSplash(ctx)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return s.Shutdown()
	}

	s.Start(time.Now())

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.Shutdown()
		case now := <-ticker.C:
			err = s.Tick(ctx, now)
			if err != nil {
				s.state = StateStopped
				return err
			}
		}
	}
}

func (s *pageScheduler) showSplash(ctx context.Context) error {
	if s.splashDuration == 0 {
		return nil
	}

	s.surface.Clear()
	width, height := s.surface.MeasureText(s.splashText)
	x := (s.surface.Width() - 1 - width) / 2
	y := (s.surface.Height() - 1 - height) / 2
	s.surface.DrawText(x, y, s.splashText)

	err := s.present()
	if err != nil {
		return err
	}

	log.Debug("splash displayed", "duration", s.splashDuration)

	timer := time.NewTimer(s.splashDuration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	return nil
}

// Start enters the running state, both timers counting from now
func (s *pageScheduler) Start(now time.Time) {
	s.state = StateRunning
	s.lastRefresh = now
	s.lastRotation = now

	log.Info("page rotation started", "pages", s.pages.Len(),
		"refresh", s.refreshInterval, "rotation", s.rotationInterval)
}

// Tick checks both deadlines against now. Both may fire on the same tick, the refresh going first.
// Nothing is rendered once the context is done, even if it ends during the refresh.
func (s *pageScheduler) Tick(ctx context.Context, now time.Time) error {
	if s.state != StateRunning || ctx.Err() != nil {
		return nil
	}

	if now.Sub(s.lastRefresh) >= s.refreshInterval {
		numFailures := s.store.RefreshAll(ctx)
		if numFailures > 0 {
			log.Debug("refresh finished with failures", "failures", numFailures)
		}
		s.lastRefresh = now
	}

	if ctx.Err() != nil {
		return nil
	}

	if now.Sub(s.lastRotation) >= s.rotationInterval {
		err := s.renderCurrent()
		s.pages.Advance()
		s.lastRotation = now
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *pageScheduler) renderCurrent() error {
	page := s.pages.Current()

	err := page.Render(s.surface, s.reader)
	if err != nil {
		log.Warn("page not rendered, skipping", "page", page.Name(), "error", err)
		return nil
	}

	log.Trace("page rendered", "page", page.Name())

	return s.present()
}

// Shutdown stops the rotation and leaves the panel blank
func (s *pageScheduler) Shutdown() error {
	s.state = StateStopped

	s.surface.Clear()
	err := s.present()
	if err != nil {
		return err
	}

	log.Info("display blanked")

	return nil
}

func (s *pageScheduler) present() error {
	err := s.panel.SetPixelBuffer(s.surface.Image())
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrDevice, err)
	}

	err = s.panel.Present()
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrDevice, err)
	}

	return nil
}

// State returns the current lifecycle stage
func (s *pageScheduler) State() State {
	return s.state
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *pageScheduler) IsInterfaceNil() bool {
	return s == nil
}
