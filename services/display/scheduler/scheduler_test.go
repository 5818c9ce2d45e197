package scheduler

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	"github.com/iulianpascalau/oled-monitoring/services/display/pages"
	"github.com/iulianpascalau/oled-monitoring/services/display/surface"
	"github.com/iulianpascalau/oled-monitoring/services/display/testsCommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

type pageStub struct {
	name          string
	renderHandler func(surface pages.Surface, reader pages.MetricReader) error
}

func (stub *pageStub) Name() string { return stub.name }
func (stub *pageStub) Kind() common.PageKind { return common.PageText }
func (stub *pageStub) Metrics() []common.MetricKey { return nil }
func (stub *pageStub) Validate(_ pages.MetricCatalog) error { return nil }
func (stub *pageStub) Render(s pages.Surface, r pages.MetricReader) error {
	if stub.renderHandler != nil {
		return stub.renderHandler(s, r)
	}

	return nil
}

type rotationStub struct {
	pages    []pages.Page
	index    int
	advances int
}

func (stub *rotationStub) Current() pages.Page { return stub.pages[stub.index] }
func (stub *rotationStub) Advance() {
	stub.index = (stub.index + 1) % len(stub.pages)
	stub.advances++
}

func (stub *rotationStub) Len() int { return len(stub.pages) }
func (stub *rotationStub) IsInterfaceNil() bool { return stub == nil }

func createArgs() ArgsPageScheduler {
	store := &testsCommon.MetricStoreStub{}

	return ArgsPageScheduler{
		Store:            store,
		Reader:           store,
		Pages:            &rotationStub{pages: []pages.Page{&pageStub{name: "first"}, &pageStub{name: "second"}}},
		Surface:          surface.NewCanvas(128, 32, nil),
		Panel:            &testsCommon.PanelStub{WidthValue: 128, HeightValue: 32},
		RefreshInterval:  2 * time.Second,
		RotationInterval: 5 * time.Second,
		SplashDuration:   0,
		SplashText:       "SKYNET",
		TickInterval:     100 * time.Millisecond,
	}
}

func isBlank(img image.Image) bool {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			if img.At(x, y) != image1bit.Off {
				return false
			}
		}
	}

	return true
}

func TestNewPageScheduler(t *testing.T) {
	t.Parallel()

	t.Run("nil store should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.Store = nil
		s, err := NewPageScheduler(args)
		assert.Nil(t, s)
		assert.True(t, s.IsInterfaceNil())
		assert.Equal(t, "nil metric store", err.Error())
	})
	t.Run("nil reader should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.Reader = nil
		s, err := NewPageScheduler(args)
		assert.Nil(t, s)
		assert.Equal(t, "nil metric reader", err.Error())
	})
	t.Run("nil pages should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.Pages = nil
		s, err := NewPageScheduler(args)
		assert.Nil(t, s)
		assert.Equal(t, "nil page rotation", err.Error())
	})
	t.Run("empty pages should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.Pages = &rotationStub{}
		s, err := NewPageScheduler(args)
		assert.Nil(t, s)
		assert.Equal(t, "empty page rotation", err.Error())
	})
	t.Run("nil surface should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.Surface = nil
		s, err := NewPageScheduler(args)
		assert.Nil(t, s)
		assert.Equal(t, "nil surface", err.Error())
	})
	t.Run("nil panel should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.Panel = nil
		s, err := NewPageScheduler(args)
		assert.Nil(t, s)
		assert.Equal(t, "nil panel", err.Error())
	})
	t.Run("invalid intervals should error", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.RefreshInterval = 0
		_, err := NewPageScheduler(args)
		assert.Contains(t, err.Error(), "invalid refresh interval")

		args = createArgs()
		args.RotationInterval = -time.Second
		_, err = NewPageScheduler(args)
		assert.Contains(t, err.Error(), "invalid rotation interval")

		args = createArgs()
		args.TickInterval = 0
		_, err = NewPageScheduler(args)
		assert.Contains(t, err.Error(), "invalid tick interval")

		args = createArgs()
		args.SplashDuration = -time.Second
		_, err = NewPageScheduler(args)
		assert.Contains(t, err.Error(), "invalid splash duration")
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		s, err := NewPageScheduler(createArgs())
		require.NoError(t, err)
		assert.False(t, s.IsInterfaceNil())
		assert.Equal(t, StateSplash, s.State())
	})
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SPLASH", StateSplash.String())
	assert.Equal(t, "RUNNING", StateRunning.String())
	assert.Equal(t, "STOPPED", StateStopped.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}

func TestPageScheduler_Tick(t *testing.T) {
	t.Parallel()

	t.Run("ten seconds of ticks should refresh five times and rotate twice", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		var events []string
		refreshTicks := make([]int, 0)
		currentTick := 0
		args.Store = &testsCommon.MetricStoreStub{
			RefreshAllHandler: func(ctx context.Context) int {
				events = append(events, "refresh")
				refreshTicks = append(refreshTicks, currentTick)
				return 0
			},
		}
		rotationTicks := make([]int, 0)
		render := func(surface pages.Surface, reader pages.MetricReader) error {
			events = append(events, "render")
			rotationTicks = append(rotationTicks, currentTick)
			return nil
		}
		rotation := &rotationStub{pages: []pages.Page{
			&pageStub{name: "first", renderHandler: render},
			&pageStub{name: "second", renderHandler: render},
		}}
		args.Pages = rotation
		presents := 0
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				presents++
				return nil
			},
		}

		s, _ := NewPageScheduler(args)
		start := time.Now()
		s.Start(start)
		assert.Equal(t, StateRunning, s.State())

		for currentTick = 1; currentTick <= 100; currentTick++ {
			err := s.Tick(context.Background(), start.Add(time.Duration(currentTick)*args.TickInterval))
			require.NoError(t, err)
		}

		assert.Equal(t, []int{20, 40, 60, 80, 100}, refreshTicks)
		assert.Equal(t, []int{50, 100}, rotationTicks)
		assert.Equal(t, 2, presents)
		assert.Equal(t, 2, rotation.advances)
		assert.Equal(t, 0, rotation.index)
		// both deadlines fire on the last tick, the refresh first
		assert.Equal(t, []string{"refresh", "render"}, events[len(events)-2:])
	})
	t.Run("tick before start should do nothing", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		refreshes := 0
		args.Store = &testsCommon.MetricStoreStub{
			RefreshAllHandler: func(ctx context.Context) int {
				refreshes++
				return 0
			},
		}
		s, _ := NewPageScheduler(args)

		err := s.Tick(context.Background(), time.Now().Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, 0, refreshes)
	})
	t.Run("page render error should skip the page and advance", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		rotation := &rotationStub{pages: []pages.Page{
			&pageStub{name: "broken", renderHandler: func(surface pages.Surface, reader pages.MetricReader) error {
				return common.ErrParse
			}},
			&pageStub{name: "second"},
		}}
		args.Pages = rotation
		presents := 0
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				presents++
				return nil
			},
		}

		s, _ := NewPageScheduler(args)
		start := time.Now()
		s.Start(start)

		err := s.Tick(context.Background(), start.Add(args.RotationInterval))
		assert.NoError(t, err)
		assert.Equal(t, 0, presents)
		assert.Equal(t, 1, rotation.index)

		err = s.Tick(context.Background(), start.Add(2*args.RotationInterval))
		assert.NoError(t, err)
		assert.Equal(t, 1, presents)
		assert.Equal(t, 0, rotation.index)
	})
	t.Run("panel error should return a device error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("i2c nack")
		args := createArgs()
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				return expectedErr
			},
		}

		s, _ := NewPageScheduler(args)
		start := time.Now()
		s.Start(start)

		err := s.Tick(context.Background(), start.Add(args.RotationInterval))
		assert.True(t, errors.Is(err, common.ErrDevice))
		assert.True(t, errors.Is(err, expectedErr))
	})
	t.Run("context cancelled during the refresh should not render", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		args := createArgs()
		args.Store = &testsCommon.MetricStoreStub{
			RefreshAllHandler: func(ctx context.Context) int {
				cancel()
				return 0
			},
		}
		renders := 0
		render := func(surface pages.Surface, reader pages.MetricReader) error {
			renders++
			return nil
		}
		rotation := &rotationStub{pages: []pages.Page{&pageStub{name: "first", renderHandler: render}}}
		args.Pages = rotation
		presents := 0
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				presents++
				return nil
			},
		}

		s, _ := NewPageScheduler(args)
		start := time.Now()
		s.Start(start)

		// both deadlines are due
		err := s.Tick(ctx, start.Add(10*time.Second))
		assert.NoError(t, err)
		assert.Error(t, ctx.Err())
		assert.Equal(t, 0, renders)
		assert.Equal(t, 0, presents)
		assert.Equal(t, 0, rotation.advances)
	})
	t.Run("cancelled context should not render", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		presents := 0
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				presents++
				return nil
			},
		}

		s, _ := NewPageScheduler(args)
		start := time.Now()
		s.Start(start)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := s.Tick(ctx, start.Add(args.RotationInterval))
		assert.NoError(t, err)
		assert.Equal(t, 0, presents)
	})
}

func TestPageScheduler_Run(t *testing.T) {
	t.Parallel()

	t.Run("cancelled before start should fetch once and blank the panel", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		refreshes := 0
		args.Store = &testsCommon.MetricStoreStub{
			RefreshAllHandler: func(ctx context.Context) int {
				refreshes++
				return 0
			},
		}
		var lastFrame image.Image
		presents := 0
		args.Panel = &testsCommon.PanelStub{
			SetPixelBufferHandler: func(img image.Image) error {
				lastFrame = img
				return nil
			},
			PresentHandler: func() error {
				presents++
				return nil
			},
		}
		s, _ := NewPageScheduler(args)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := s.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, refreshes)
		assert.Equal(t, 1, presents)
		assert.True(t, isBlank(lastFrame))
		assert.Equal(t, StateStopped, s.State())
	})
	t.Run("splash should be centred and interruptible", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		args := createArgs()
		args.SplashDuration = time.Hour
		canvas := surface.NewCanvas(128, 32, nil)
		args.Surface = canvas

		splashLit := 0
		litOutside := 0
		presents := 0
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				presents++
				if presents > 1 {
					return nil
				}

				// "SKYNET" is 42x13 pixels in the 7x13 font
				for x := 0; x < 128; x++ {
					for y := 0; y < 32; y++ {
						if !canvas.IsOn(x, y) {
							continue
						}
						if x >= 42 && x < 84 && y >= 9 && y < 22 {
							splashLit++
						} else {
							litOutside++
						}
					}
				}
				cancel()
				return nil
			},
		}
		s, _ := NewPageScheduler(args)

		err := s.Run(ctx)
		assert.NoError(t, err)
		assert.Greater(t, splashLit, 0)
		assert.Equal(t, 0, litOutside)
		assert.Equal(t, 2, presents)
		assert.True(t, isBlank(canvas.Image()))
	})
	t.Run("termination while running should blank without further renders", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		args := createArgs()
		args.RefreshInterval = 5 * time.Millisecond
		args.RotationInterval = 10 * time.Millisecond
		args.TickInterval = time.Millisecond
		renders := 0
		render := func(surface pages.Surface, reader pages.MetricReader) error {
			renders++
			surface.DrawRect(0, 0, surface.Width()-1, surface.Height()-1, true)
			cancel()
			return nil
		}
		args.Pages = &rotationStub{pages: []pages.Page{
			&pageStub{name: "first", renderHandler: render},
			&pageStub{name: "second", renderHandler: render},
		}}
		var lastFrame image.Image
		args.Panel = &testsCommon.PanelStub{
			SetPixelBufferHandler: func(img image.Image) error {
				lastFrame = img
				return nil
			},
		}
		s, _ := NewPageScheduler(args)

		err := s.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, renders)
		assert.True(t, isBlank(lastFrame))
		assert.Equal(t, StateStopped, s.State())
	})
	t.Run("panel failure should stop the loop", func(t *testing.T) {
		t.Parallel()

		args := createArgs()
		args.RotationInterval = 5 * time.Millisecond
		args.TickInterval = time.Millisecond
		args.Panel = &testsCommon.PanelStub{
			PresentHandler: func() error {
				return errors.New("bus closed")
			},
		}
		s, _ := NewPageScheduler(args)

		err := s.Run(context.Background())
		assert.True(t, errors.Is(err, common.ErrDevice))
		assert.Equal(t, StateStopped, s.State())
	})
}
