package decompile

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scummkit/internal/buf"
	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/index"
	"github.com/joshuapare/scummkit/internal/sink"
	"github.com/joshuapare/scummkit/internal/testutil"
)

// Offsets of a disk built as LECF { LFLF { ... } ... }.
const (
	firstRoomHeader  = format.HeaderSize
	firstRoomPayload = 2 * format.HeaderSize
)

type location struct {
	disk   uint8
	offset int64
}

type objectKey struct {
	dir format.BlockID
	location
}

// fakeIndex is an in-memory Index keyed by exact positions.
type fakeIndex struct {
	rooms   map[location]int
	names   map[int]string
	dirs    map[format.BlockID]*index.Directory
	objects map[objectKey]int32
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		rooms:   map[location]int{},
		names:   map[int]string{},
		dirs:    map[format.BlockID]*index.Directory{},
		objects: map[objectKey]int32{},
	}
}

func (f *fakeIndex) room(disk uint8, payloadOffset int64, number int, name string) *fakeIndex {
	f.rooms[location{disk, payloadOffset}] = number
	if name != "" {
		f.names[number] = name
	}
	return f
}

// directory makes tag index-backed through a directory named dir.
func (f *fakeIndex) directory(tag, dir string) *fakeIndex {
	f.dirs[testutil.Tag(tag)] = &index.Directory{ID: testutil.Tag(dir)}
	return f
}

func (f *fakeIndex) object(dir string, disk uint8, headerOffset int64, n int32) *fakeIndex {
	f.objects[objectKey{testutil.Tag(dir), location{disk, headerOffset}}] = n
	return f
}

func (f *fakeIndex) RoomNumberFor(disk uint8, offset int64) (int, bool) {
	n, ok := f.rooms[location{disk, offset}]
	return n, ok
}

func (f *fakeIndex) RoomName(room int) (string, bool) {
	n, ok := f.names[room]
	return n, ok
}

func (f *fakeIndex) DirectoryFor(id format.BlockID) (*index.Directory, bool) {
	d, ok := f.dirs[id]
	return d, ok
}

func (f *fakeIndex) ObjectNumberIn(dir *index.Directory, disk uint8, headerOffset int64) (int32, bool) {
	n, ok := f.objects[objectKey{dir.ID, location{disk, headerOffset}}]
	return n, ok
}

// disk encodes blocks as they are stored on disk.
func disk(blocks ...testutil.Block) io.ReadSeeker {
	return bytes.NewReader(testutil.Encrypt(testutil.Encode(blocks...), format.XORKey))
}

func lecf(rooms ...testutil.Block) testutil.Block {
	return testutil.Container("LECF", rooms...)
}

func lflf(children ...testutil.Block) testutil.Block {
	return testutil.Container("LFLF", children...)
}

func le32(v int32) []byte {
	b := make([]byte, 4)
	buf.PutU32LE(b, uint32(v))
	return b
}

// decompileDisks runs a Decompiler over the given disks, numbered from 1, and
// finishes it.
func decompileDisks(t *testing.T, ix Index, opt Options, disks ...io.ReadSeeker) (*sink.Memory, *Decompiler, error) {
	t.Helper()
	out := sink.NewMemory()
	d := New(ix, out.Write, opt)
	for i, r := range disks {
		if err := d.Disk(context.Background(), uint8(i+1), r); err != nil {
			return out, d, err
		}
	}
	return out, d, d.Finish()
}

func mustDecompile(t *testing.T, ix Index, opt Options, disks ...io.ReadSeeker) (*sink.Memory, *Decompiler) {
	t.Helper()
	out, d, err := decompileDisks(t, ix, opt, disks...)
	require.NoError(t, err)
	return out, d
}
