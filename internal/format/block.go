package format

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/scummkit/internal/buf"
)

// BlockID is the four-byte tag naming a block kind. Equality is byte-exact and
// the bytes need not be valid text.
type BlockID [TagSize]byte

// ParseBlockID converts a four-character string into a BlockID.
func ParseBlockID(s string) (BlockID, error) {
	var id BlockID
	if len(s) != TagSize {
		return id, fmt.Errorf("block id %q: want %d bytes, got %d", s, TagSize, len(s))
	}
	copy(id[:], s)
	return id, nil
}

// String renders the id for diagnostics. Unprintable ids are quoted with Go
// escapes so they remain readable in logs.
func (id BlockID) String() string {
	if s, ok := id.Text(); ok {
		return s
	}
	return strconv.Quote(string(id[:]))
}

// Text returns the id as a string when every byte is printable ASCII and safe to
// embed in a relative path or a quoted descriptor field.
func (id BlockID) Text() (string, bool) {
	for _, c := range id {
		if c < 0x20 || c > 0x7e || c == '/' || c == '\\' || c == '"' {
			return "", false
		}
	}
	return string(id[:]), true
}

// Header is a decoded block header.
type Header struct {
	ID BlockID
	// Length is the declared length including the header itself.
	Length uint32
}

// PayloadLen returns the number of payload bytes following the header.
func (h Header) PayloadLen() (int64, error) {
	if h.Length < HeaderSize {
		return 0, fmt.Errorf("block %s: declared length %d: %w", h.ID, h.Length, ErrLengthOverflow)
	}
	return int64(h.Length) - HeaderSize, nil
}

// ParseHeader decodes the block header at the start of b.
func ParseHeader(b []byte) (Header, error) {
	head, ok := buf.Slice(b, 0, HeaderSize)
	if !ok {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	var h Header
	copy(h.ID[:], head[:TagSize])
	h.Length = buf.U32BE(head[TagSize:])
	return h, nil
}

// PutHeader encodes a header for a block carrying payloadLen bytes into b,
// which must hold at least HeaderSize bytes.
func PutHeader(b []byte, id BlockID, payloadLen int) error {
	total, ok := buf.AddOverflowSafe(payloadLen, HeaderSize)
	if !ok || payloadLen < 0 || total > int(^uint32(0)) {
		return fmt.Errorf("block %s: payload %d: %w", id, payloadLen, ErrLengthOverflow)
	}
	if len(b) < HeaderSize {
		return fmt.Errorf("header: %w", ErrTruncated)
	}
	copy(b, id[:])
	buf.PutU32BE(b[TagSize:], uint32(total))
	return nil
}
