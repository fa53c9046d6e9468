package scan

import (
	"io"

	"github.com/joshuapare/scummkit/internal/format"
)

// Node is a block visited by Walk.
type Node struct {
	Block
	Depth     int
	Container bool
}

// WalkOptions controls Walk.
type WalkOptions struct {
	// IsContainer reports whether a tag's payload is itself a block region.
	IsContainer func(format.BlockID) bool
	// MaxDepth stops descent below this depth. Negative means unlimited.
	MaxDepth int
}

// Walk visits every block of the region described by sc in stream order,
// descending into containers, and finishes every region it opens. The visitor
// must not move r.
func Walk(r io.ReadSeeker, sc *Scanner, opts WalkOptions, fn func(Node) error) error {
	return walk(r, sc, 0, opts, fn)
}

func walk(r io.ReadSeeker, sc *Scanner, depth int, opts WalkOptions, fn func(Node) error) error {
	for {
		b, err := sc.Next(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		descend := opts.IsContainer != nil && opts.IsContainer(b.ID) &&
			(opts.MaxDepth < 0 || depth < opts.MaxDepth)
		if err := fn(Node{Block: b, Depth: depth, Container: descend}); err != nil {
			return err
		}

		if !descend {
			if err := Skip(r, b); err != nil {
				return err
			}
			continue
		}
		child, err := NewRegion(r, b.Len)
		if err != nil {
			return err
		}
		if err := walk(r, child, depth+1, opts, fn); err != nil {
			return err
		}
	}
	return sc.Finish(r)
}
