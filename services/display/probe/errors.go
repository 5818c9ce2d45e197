package probe

import "fmt"

type errPathNotFound string

func (e errPathNotFound) Error() string {
	return "JSON path not found in probe output: " + string(e)
}

type errUnknownSource string

func (e errUnknownSource) Error() string {
	return "unknown probe source: " + string(e)
}

type errUnknownReading string

func (e errUnknownReading) Error() string {
	return "unknown host reading: " + string(e)
}

type errCommandFailed struct {
	command string
	output  string
	err     error
}

func (e *errCommandFailed) Error() string {
	return fmt.Sprintf("command %q failed: %v, output: %s", e.command, e.err, e.output)
}

func (e *errCommandFailed) Unwrap() error {
	return e.err
}
