// Package sink provides destinations for decompiled artifacts.
//
// Every sink accepts slash-separated relative paths such as
// "project.txt" or "lobby/RMDA/LSC2/200.bin". The data slice passed to
// Write is only valid for the duration of the call; sinks that retain it
// make their own copy.
package sink

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrUnsafePath is returned for absolute paths or paths escaping the sink root.
var ErrUnsafePath = errors.New("sink: path is not local")

// Sink is the common interface of all destinations.
type Sink interface {
	Write(path string, data []byte) error
	Close() error
}

func checkPath(name string) error {
	if !fs.ValidPath(name) || name == "." {
		return fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return nil
}
