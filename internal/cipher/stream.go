// Package cipher provides the transparent decoding layer for XOR-encoded
// archive files.
//
// The cipher is position independent: byte i of the plaintext is byte i of the
// file XORed with a constant key. Seeking therefore passes straight through to
// the underlying source and decoded offsets equal file offsets.
package cipher

import "io"

// Stream decodes bytes read from an underlying io.ReadSeeker.
type Stream struct {
	r   io.ReadSeeker
	key byte
}

// NewStream wraps r so every byte read through it is XORed with key.
func NewStream(r io.ReadSeeker, key byte) *Stream {
	return &Stream{r: r, key: key}
}

// Read implements io.Reader. Errors from the underlying source are returned
// unchanged alongside any bytes that were decoded.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	XOR(p[:n], s.key)
	return n, err
}

// Seek implements io.Seeker by delegating to the underlying source.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	return s.r.Seek(offset, whence)
}

// Key returns the XOR key.
func (s *Stream) Key() byte { return s.key }

// XOR applies key to every byte of b in place. Applying it twice restores the
// original bytes.
func XOR(b []byte, key byte) {
	if key == 0 {
		return
	}
	for i := range b {
		b[i] ^= key
	}
}
