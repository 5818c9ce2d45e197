package testsCommon

import "image"

// PanelStub -
type PanelStub struct {
	WidthValue            int
	HeightValue           int
	SetPixelBufferHandler func(img image.Image) error
	PresentHandler        func() error
	CloseHandler          func() error
}

// Width -
func (stub *PanelStub) Width() int {
	return stub.WidthValue
}

// Height -
func (stub *PanelStub) Height() int {
	return stub.HeightValue
}

// SetPixelBuffer -
func (stub *PanelStub) SetPixelBuffer(img image.Image) error {
	if stub.SetPixelBufferHandler != nil {
		return stub.SetPixelBufferHandler(img)
	}

	return nil
}

// Present -
func (stub *PanelStub) Present() error {
	if stub.PresentHandler != nil {
		return stub.PresentHandler()
	}

	return nil
}

// Close -
func (stub *PanelStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *PanelStub) IsInterfaceNil() bool {
	return stub == nil
}
