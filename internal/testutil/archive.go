// Package testutil builds synthetic archives for tests.
package testutil

import (
	"bytes"

	"github.com/joshuapare/scummkit/internal/buf"
	"github.com/joshuapare/scummkit/internal/cipher"
	"github.com/joshuapare/scummkit/internal/format"
)

// Block describes one block of a synthetic archive. Containers carry Children,
// leaves carry Payload.
type Block struct {
	ID       format.BlockID
	Payload  []byte
	Children []Block
	// Declared overrides the encoded length field when non-zero, which lets
	// tests produce malformed archives.
	Declared uint32
}

// Tag converts a four-character string into a block id and panics otherwise.
func Tag(s string) format.BlockID {
	id, err := format.ParseBlockID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Raw returns a leaf block.
func Raw(id string, payload []byte) Block {
	return Block{ID: Tag(id), Payload: payload}
}

// Container returns a block whose payload is the encoding of children.
func Container(id string, children ...Block) Block {
	return Block{ID: Tag(id), Children: children}
}

// Bytes encodes the block, header included.
func (b Block) Bytes() []byte {
	payload := b.Payload
	if len(b.Children) > 0 {
		payload = Encode(b.Children...)
	}
	out := make([]byte, format.HeaderSize, format.HeaderSize+len(payload))
	if err := format.PutHeader(out, b.ID, len(payload)); err != nil {
		panic(err)
	}
	if b.Declared != 0 {
		buf.PutU32BE(out[format.TagSize:], b.Declared)
	}
	return append(out, payload...)
}

// Size returns the encoded size of the block, header included.
func (b Block) Size() int { return len(b.Bytes()) }

// Encode concatenates the encodings of blocks.
func Encode(blocks ...Block) []byte {
	var out bytes.Buffer
	for _, b := range blocks {
		out.Write(b.Bytes())
	}
	return out.Bytes()
}

// Encrypt returns a copy of plain XORed with key, as stored on disk.
func Encrypt(plain []byte, key byte) []byte {
	out := bytes.Clone(plain)
	cipher.XOR(out, key)
	return out
}
