package decompile

import (
	"log/slog"

	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/logger"
)

// WriteFunc receives every artifact. data is only valid for the duration of
// the call.
type WriteFunc func(path string, data []byte) error

// Options configures a decompilation run. The zero value is ready to use.
type Options struct {
	// Disks is the number of disk files to read. Zero derives it from the
	// highest disk number recorded in the index, with a minimum of one.
	Disks int

	// Key is the XOR key of the disk and index files. Zero selects
	// format.XORKey; use NoCipher for files stored without XOR.
	Key byte

	// NoCipher reads disk and index files as stored, ignoring Key.
	NoCipher bool

	// Containers lists the room children whose payload is itself a block
	// region, mapped to the path prefix of their leaves. Nil selects
	// DefaultContainers.
	Containers map[format.BlockID]string

	// StrictRooms makes a room number seen twice an index mismatch instead
	// of replacing the earlier room.
	StrictRooms bool

	// Logger receives progress records. Nil selects logger.L.
	Logger *slog.Logger
}

// DefaultContainers returns the containers descended into by default: room
// data, whose leaves are written under "RMDA/".
func DefaultContainers() map[format.BlockID]string {
	return map[format.BlockID]string{format.RMDA: "RMDA/"}
}

func (o Options) key() byte {
	if o.NoCipher {
		return 0
	}
	if o.Key == 0 {
		return format.XORKey
	}
	return o.Key
}

func (o Options) containers() map[format.BlockID]string {
	if o.Containers == nil {
		return DefaultContainers()
	}
	return o.Containers
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return logger.L
	}
	return o.Logger
}
