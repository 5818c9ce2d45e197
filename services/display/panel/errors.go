package panel

import "errors"

var errNilFrame = errors.New("nil frame")
var errFrameSize = errors.New("frame size does not match the panel")
var errInvalidSize = errors.New("invalid panel size")
var errNoFrame = errors.New("no frame to present")
var errClosed = errors.New("panel closed")
