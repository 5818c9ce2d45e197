package surface

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// canvas is a monochrome drawing surface laid out the way SSD1306 controllers expect their frame buffer.
// Coordinates are inclusive and everything outside the canvas is clipped.
type canvas struct {
	img  *image1bit.VerticalLSB
	face font.Face
	ink  *image.Uniform
}

// NewCanvas creates a blank canvas of the provided size that writes text with the provided face.
// A nil face selects the 7x13 fixed font.
func NewCanvas(width int, height int, face font.Face) *canvas {
	if face == nil {
		face = basicfont.Face7x13
	}

	return &canvas{
		img:  image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
		face: face,
		ink:  image.NewUniform(image1bit.On),
	}
}

// Width returns the canvas width in pixels
func (c *canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels
func (c *canvas) Height() int {
	return c.img.Rect.Dy()
}

// Clear turns off every pixel
func (c *canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
}

// ClearRect turns off every pixel of the rectangle
func (c *canvas) ClearRect(x0, y0, x1, y1 int) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	c.fillRect(x0, y0, x1, y1, image1bit.Off)
}

// DrawRect draws the rectangle outline and either fills its interior or clears it
func (c *canvas) DrawRect(x0, y0, x1, y1 int, filled bool) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)

	interior := image1bit.Off
	if filled {
		interior = image1bit.On
	}
	c.fillRect(x0+1, y0+1, x1-1, y1-1, interior)

	c.DrawLine(x0, y0, x1, y0)
	c.DrawLine(x0, y1, x1, y1)
	c.DrawLine(x0, y0, x0, y1)
	c.DrawLine(x1, y0, x1, y1)
}

// DrawLine draws a one pixel wide line between the two points, both ends included
func (c *canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		c.set(x0, y0, image1bit.On)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawText writes the text with its top left corner at the provided point
func (c *canvas) DrawText(x, y int, text string) {
	drawer := font.Drawer{
		Dst:  c.img,
		Src:  c.ink,
		Face: c.face,
		Dot:  fixed.P(x, y+c.face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

// MeasureText returns the width and the line height of the text
func (c *canvas) MeasureText(text string) (int, int) {
	metrics := c.face.Metrics()
	width := font.MeasureString(c.face, text).Ceil()

	return width, metrics.Ascent.Ceil() + metrics.Descent.Ceil()
}

// Image returns the frame buffer
func (c *canvas) Image() image.Image {
	return c.img
}

// IsOn returns true if the pixel is lit
func (c *canvas) IsOn(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return false
	}

	return bool(c.img.BitAt(x, y))
}

// IsInterfaceNil returns true if the value under the interface is nil
func (c *canvas) IsInterfaceNil() bool {
	return c == nil
}

// fillRect expects ordered corners, an inverted rectangle is empty
func (c *canvas) fillRect(x0, y0, x1, y1 int, bit image1bit.Bit) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, bit)
		}
	}
}

func (c *canvas) set(x, y int, bit image1bit.Bit) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}

	c.img.SetBit(x, y, bit)
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}

func abs(value int) int {
	if value < 0 {
		return -value
	}

	return value
}
