package panel

import (
	"fmt"
	"image"
	"io"

	"github.com/iulianpascalau/oled-monitoring/services/display/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

var log = logger.GetOrCreate("panel")

// ArgsSSD1306Panel is the DTO used to open an SSD1306 panel
type ArgsSSD1306Panel struct {
	// I2CBus is the bus name or number, empty selects the first available bus
	I2CBus string
	Width  int
	Height int
}

type ssd1306Panel struct {
	dev    frameDrawer
	bus    io.Closer
	width  int
	height int
	frame  image.Image
	closed bool
}

// NewSSD1306Panel initializes the host drivers, opens the I²C bus and the controller on it
func NewSSD1306Panel(args ArgsSSD1306Panel) (*ssd1306Panel, error) {
	err := checkSize(args.Width, args.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfiguration, err)
	}

	_, err = host.Init()
	if err != nil {
		return nil, fmt.Errorf("%w: host init: %w", common.ErrDevice, err)
	}

	bus, err := i2creg.Open(args.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("%w: opening i2c bus %q: %w", common.ErrDevice, args.I2CBus, err)
	}

	p, err := openOnBus(bus, bus, args)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}

	log.Debug("ssd1306 panel opened", "bus", bus.String(), "width", args.Width, "height", args.Height)

	return p, nil
}

// openOnBus initializes the controller found on the bus. Panels wider than twice their height,
// like the 128x32 modules, wire the COM pins sequentially.
func openOnBus(bus i2c.Bus, closer io.Closer, args ArgsSSD1306Panel) (*ssd1306Panel, error) {
	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{
		W:          args.Width,
		H:          args.Height,
		Sequential: args.Width > 2*args.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ssd1306 init: %w", common.ErrDevice, err)
	}

	return newSSD1306Panel(dev, closer, args.Width, args.Height), nil
}

func newSSD1306Panel(dev frameDrawer, bus io.Closer, width int, height int) *ssd1306Panel {
	return &ssd1306Panel{
		dev:    dev,
		bus:    bus,
		width:  width,
		height: height,
	}
}

// Width returns the panel width in pixels
func (p *ssd1306Panel) Width() int {
	return p.width
}

// Height returns the panel height in pixels
func (p *ssd1306Panel) Height() int {
	return p.height
}

// SetPixelBuffer stores the frame to be sent on the next Present call
func (p *ssd1306Panel) SetPixelBuffer(img image.Image) error {
	err := checkFrame(img, p.width, p.height)
	if err != nil {
		return err
	}

	p.frame = img

	return nil
}

// Present sends the stored frame to the controller
func (p *ssd1306Panel) Present() error {
	if p.closed {
		return errClosed
	}
	if p.frame == nil {
		return errNoFrame
	}

	bounds := p.frame.Bounds()
	err := p.dev.Draw(image.Rect(0, 0, p.width, p.height), p.frame, bounds.Min)
	if err != nil {
		return fmt.Errorf("%w: draw: %w", common.ErrDevice, err)
	}

	return nil
}

// Close turns the panel off and releases the bus. The panel keeps its content until powered again.
func (p *ssd1306Panel) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	errHalt := p.dev.Halt()
	errBus := p.bus.Close()
	if errHalt != nil {
		return fmt.Errorf("%w: halt: %w", common.ErrDevice, errHalt)
	}
	if errBus != nil {
		return fmt.Errorf("%w: closing bus: %w", common.ErrDevice, errBus)
	}

	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *ssd1306Panel) IsInterfaceNil() bool {
	return p == nil
}
