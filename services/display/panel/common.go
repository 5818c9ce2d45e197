package panel

import (
	"fmt"
	"image"
)

func checkFrame(img image.Image, width int, height int) error {
	if img == nil {
		return errNilFrame
	}

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return fmt.Errorf("%w: got %dx%d, panel is %dx%d", errFrameSize, bounds.Dx(), bounds.Dy(), width, height)
	}

	return nil
}

func checkSize(width int, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", errInvalidSize, width, height)
	}
	if height%8 != 0 {
		return fmt.Errorf("%w: height %d is not a multiple of 8", errInvalidSize, height)
	}

	return nil
}
