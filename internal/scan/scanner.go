// Package scan iterates the blocks of one region of a tagged archive.
//
// A Scanner is single level: it yields the headers of the blocks that directly
// tile its region and never descends on its own. After each yielded block the
// caller must either read the whole payload or Skip it before asking for the
// next one; the scanner only tracks where the region ends.
package scan

import (
	"fmt"
	"io"

	"github.com/joshuapare/scummkit/internal/format"
)

// Block describes a yielded block header.
type Block struct {
	ID format.BlockID
	// Offset is the absolute position of the first payload byte.
	Offset int64
	// Len is the payload length, excluding the 8-byte header.
	Len int64
}

// HeaderOffset returns the absolute position of the block's tag.
func (b Block) HeaderOffset() int64 { return b.Offset - format.HeaderSize }

// End returns the absolute position just past the payload.
func (b Block) End() int64 { return b.Offset + b.Len }

// Scanner walks the blocks of the region ending at an exclusive absolute bound.
type Scanner struct {
	end int64
}

// New returns a scanner for a region ending at the absolute position end. The
// root of a file is scanned with New(fileLength).
func New(end int64) *Scanner {
	return &Scanner{end: end}
}

// NewRegion returns a scanner for the length bytes starting at the current
// position of s, which is usually the payload of a just-yielded container.
func NewRegion(s io.Seeker, length int64) (*Scanner, error) {
	pos, err := Position(s)
	if err != nil {
		return nil, err
	}
	if length < 0 || pos > maxInt64-length {
		return nil, fmt.Errorf("scan: region of %d bytes at %#x: %w", length, pos, format.ErrLengthOverflow)
	}
	return &Scanner{end: pos + length}, nil
}

// End returns the exclusive upper bound of the region.
func (sc *Scanner) End() int64 { return sc.end }

// Next reads the next block header and leaves r positioned at the first
// payload byte. It returns io.EOF when the region has been fully consumed.
func (sc *Scanner) Next(r io.ReadSeeker) (Block, error) {
	pos, err := Position(r)
	if err != nil {
		return Block{}, err
	}
	if pos == sc.end {
		return Block{}, io.EOF
	}
	if pos > sc.end || sc.end-pos < format.HeaderSize {
		return Block{}, fmt.Errorf("scan: header at %#x, region ends at %#x: %w", pos, sc.end, format.ErrBoundary)
	}

	var head [format.HeaderSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return Block{}, fmt.Errorf("scan: header at %#x: %w", pos, err)
	}
	h, err := format.ParseHeader(head[:])
	if err != nil {
		return Block{}, err
	}
	n, err := h.PayloadLen()
	if err != nil {
		return Block{}, fmt.Errorf("scan: block at %#x: %w", pos, err)
	}
	payload := pos + format.HeaderSize
	if n > sc.end-payload {
		return Block{}, fmt.Errorf("scan: block %s at %#x declares %d bytes, region ends at %#x: %w",
			h.ID, pos, h.Length, sc.end, format.ErrBoundary)
	}
	return Block{ID: h.ID, Offset: payload, Len: n}, nil
}

// NextMustBe is Next for regions whose next block is mandatory. It fails with
// format.ErrSignatureMismatch unless the next tag equals id, and returns io.EOF
// only when the region was already empty.
func (sc *Scanner) NextMustBe(r io.ReadSeeker, id format.BlockID) (Block, error) {
	b, err := sc.Next(r)
	if err != nil {
		return Block{}, err
	}
	if b.ID != id {
		return Block{}, fmt.Errorf("scan: expected %s at %#x, found %s: %w",
			id, b.HeaderOffset(), b.ID, format.ErrSignatureMismatch)
	}
	return b, nil
}

// Finish verifies that r sits exactly at the end of the region.
func (sc *Scanner) Finish(r io.Seeker) error {
	pos, err := Position(r)
	if err != nil {
		return err
	}
	if pos != sc.end {
		return fmt.Errorf("scan: position %#x, region ends at %#x: %w", pos, sc.end, format.ErrTrailingData)
	}
	return nil
}

// Skip moves r past the payload of b.
func Skip(r io.Seeker, b Block) error {
	_, err := r.Seek(b.End(), io.SeekStart)
	return err
}

// Position returns the current absolute position of s.
func Position(s io.Seeker) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// Length returns the total length of s and rewinds it to the start.
func Length(s io.Seeker) (int64, error) {
	n, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return n, nil
}

const maxInt64 = 1<<63 - 1
