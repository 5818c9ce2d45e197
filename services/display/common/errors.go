package common

import "errors"

// ErrConfiguration signals an invalid metric catalog or page set. It is fatal at startup.
var ErrConfiguration = errors.New("configuration error")

// ErrProbe signals that a metric probe failed or returned unusable output
var ErrProbe = errors.New("probe error")

// ErrParse signals that the numeric field of a probe record could not be parsed
var ErrParse = errors.New("parse error")

// ErrDevice signals that the display panel could not be reached
var ErrDevice = errors.New("device error")
