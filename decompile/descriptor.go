package decompile

import (
	"bytes"
	"fmt"
)

const indentWidth = 4

// descriptor accumulates the room.scu text of one room.
type descriptor struct {
	buf   bytes.Buffer
	depth int
}

func (d *descriptor) reset() {
	d.buf.Reset()
	d.depth = 0
}

func (d *descriptor) indent() {
	for range d.depth * indentWidth {
		d.buf.WriteByte(' ')
	}
}

// open starts a nested container scope.
func (d *descriptor) open(tag string) {
	d.indent()
	fmt.Fprintf(&d.buf, "raw-block %q {\n", tag)
	d.depth++
}

func (d *descriptor) close() {
	d.depth--
	d.indent()
	d.buf.WriteString("}\n")
}

// leaf records one emitted block. The index number is written only when the
// block was numbered by the index.
func (d *descriptor) leaf(tag string, id Identity, rel string) {
	d.indent()
	fmt.Fprintf(&d.buf, "raw-block %q", tag)
	if glob, ok := id.Glob(); ok {
		fmt.Fprintf(&d.buf, " %d", glob)
	}
	fmt.Fprintf(&d.buf, " %q\n", rel)
}

func (d *descriptor) bytes() []byte { return d.buf.Bytes() }
