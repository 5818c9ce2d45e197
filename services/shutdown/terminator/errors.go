package terminator

import "errors"

// ErrProcessNotFound signals that no display process was running
var ErrProcessNotFound = errors.New("display process not found")

// ErrProcessStillRunning signals that the display process did not exit in the allotted time
var ErrProcessStillRunning = errors.New("display process still running")
