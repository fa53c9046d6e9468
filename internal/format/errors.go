package format

import "errors"

var (
	// ErrSignatureMismatch indicates a block had an unexpected tag.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBoundary indicates a block header or payload crosses the end of its
	// enclosing region.
	ErrBoundary = errors.New("format: block crosses region boundary")
	// ErrLengthOverflow indicates a declared length is smaller than a header or
	// does not fit in the address space.
	ErrLengthOverflow = errors.New("format: invalid block length")
	// ErrTrailingData indicates a region was not consumed exactly.
	ErrTrailingData = errors.New("format: region not consumed exactly")
)
