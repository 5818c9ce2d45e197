package terminator

import (
	"errors"
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

type panelBlanker struct {
	open func() (Panel, error)
}

// NewPanelBlanker creates a blanker that opens the panel with the provided handler every time it blanks it
func NewPanelBlanker(open func() (Panel, error)) (*panelBlanker, error) {
	if open == nil {
		return nil, errors.New("nil panel opener")
	}

	return &panelBlanker{
		open: open,
	}, nil
}

// Blank opens the panel, pushes an all-off frame and releases the panel
func (blanker *panelBlanker) Blank() error {
	panel, err := blanker.open()
	if err != nil {
		return err
	}

	frame := image1bit.NewVerticalLSB(image.Rect(0, 0, panel.Width(), panel.Height()))
	err = panel.SetPixelBuffer(frame)
	if err == nil {
		err = panel.Present()
	}

	errClose := panel.Close()
	if err != nil {
		return err
	}

	return errClose
}

// IsInterfaceNil returns true if the value under the interface is nil
func (blanker *panelBlanker) IsInterfaceNil() bool {
	return blanker == nil
}
