package panel

import "image"

// frameDrawer is the subset of the SSD1306 driver the panel uses
type frameDrawer interface {
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Halt() error
}
