package panel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const clearScreen = "\x1b[H\x1b[2J"

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("60")).
	Foreground(lipgloss.Color("45"))

// ArgsConsolePanel is the DTO used to create a console panel
type ArgsConsolePanel struct {
	Writer io.Writer
	Width  int
	Height int
	// Redraw moves the cursor home and clears the terminal before every frame
	Redraw bool
}

// consolePanel simulates the OLED in a terminal, two pixel rows per character cell
type consolePanel struct {
	writer io.Writer
	width  int
	height int
	redraw bool
	frame  image.Image
	closed bool
}

// NewConsolePanel creates a panel that prints its frames to the writer
func NewConsolePanel(args ArgsConsolePanel) (*consolePanel, error) {
	if args.Writer == nil {
		return nil, errors.New("nil writer")
	}
	err := checkSize(args.Width, args.Height)
	if err != nil {
		return nil, err
	}

	return &consolePanel{
		writer: args.Writer,
		width:  args.Width,
		height: args.Height,
		redraw: args.Redraw,
	}, nil
}

// Width returns the simulated panel width in pixels
func (p *consolePanel) Width() int {
	return p.width
}

// Height returns the simulated panel height in pixels
func (p *consolePanel) Height() int {
	return p.height
}

// SetPixelBuffer stores the frame to be printed on the next Present call
func (p *consolePanel) SetPixelBuffer(img image.Image) error {
	err := checkFrame(img, p.width, p.height)
	if err != nil {
		return err
	}

	p.frame = img

	return nil
}

// Present prints the stored frame
func (p *consolePanel) Present() error {
	if p.closed {
		return errClosed
	}
	if p.frame == nil {
		return errNoFrame
	}

	output := frameStyle.Render(RenderBlocks(p.frame))
	if p.redraw {
		output = clearScreen + output
	}

	_, err := fmt.Fprintln(p.writer, output)

	return err
}

// Close marks the panel closed
func (p *consolePanel) Close() error {
	p.closed = true

	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *consolePanel) IsInterfaceNil() bool {
	return p == nil
}

// RenderBlocks converts a monochrome frame to text using half block characters
func RenderBlocks(img image.Image) string {
	bounds := img.Bounds()
	lines := make([]string, 0, (bounds.Dy()+1)/2)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		builder := strings.Builder{}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := isLit(img.At(x, y))
			bottom := y+1 < bounds.Max.Y && isLit(img.At(x, y+1))

			switch {
			case top && bottom:
				builder.WriteRune('█')
			case top:
				builder.WriteRune('▀')
			case bottom:
				builder.WriteRune('▄')
			default:
				builder.WriteRune(' ')
			}
		}
		lines = append(lines, builder.String())
	}

	return strings.Join(lines, "\n")
}

func isLit(c color.Color) bool {
	gray := color.GrayModel.Convert(c).(color.Gray)

	return gray.Y >= 0x80
}
