package index

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/scummkit/internal/buf"
	"github.com/joshuapare/scummkit/internal/cipher"
	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/mmfile"
	"github.com/joshuapare/scummkit/internal/scan"
)

// Load maps the index file at path and decodes it.
func Load(path string, key byte) (*Index, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return Read(bytes.NewReader(data), key)
}

// Read decodes an XOR-encoded index from r. Blocks this package does not
// understand are skipped, but the file must still tile into whole blocks.
func Read(r io.ReadSeeker, key byte) (*Index, error) {
	s := cipher.NewStream(r, key)
	n, err := scan.Length(s)
	if err != nil {
		return nil, err
	}

	var (
		names   = map[int]string{}
		disks   []uint8
		offsets []uint32
		dirs    []*Directory
		payload []byte
	)
	sc := scan.New(n)
	for {
		b, err := sc.Next(s)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}

		if !wanted(b.ID) {
			if err := scan.Skip(s, b); err != nil {
				return nil, err
			}
			continue
		}

		payload = slices.Grow(payload[:0], int(b.Len))[:b.Len]
		if _, err := io.ReadFull(s, payload); err != nil {
			return nil, fmt.Errorf("index: %s payload: %w", b.ID, err)
		}

		switch {
		case b.ID == format.RNAM:
			if err := parseRoomNames(payload, names); err != nil {
				return nil, err
			}
		case b.ID == format.DLFL:
			if offsets, err = parseU32Table(b.ID, payload); err != nil {
				return nil, err
			}
		case b.ID == format.DISK:
			if disks, err = parseU8Table(b.ID, payload); err != nil {
				return nil, err
			}
		case isDirectory(b.ID):
			d, err := parseDirectory(b.ID, payload)
			if err != nil {
				return nil, err
			}
			dirs = append(dirs, d)
		}
	}
	if err := sc.Finish(s); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	return New(names, disks, offsets, dirs...), nil
}

func wanted(id format.BlockID) bool {
	return id == format.RNAM || id == format.DLFL || id == format.DISK || isDirectory(id)
}

func parseRoomNames(b []byte, names map[int]string) error {
	dec := charmap.Windows1252.NewDecoder()
	off := 0
	for {
		raw, ok := buf.Slice(b, off, 2)
		if !ok {
			return fmt.Errorf("index: RNAM: missing terminator: %w", format.ErrTruncated)
		}
		room := int(buf.U16LE(raw))
		off += 2
		if room == 0 {
			return nil
		}
		end := bytes.IndexByte(b[off:], 0)
		if end < 0 {
			return fmt.Errorf("index: RNAM: room %d name not terminated: %w", room, format.ErrTruncated)
		}
		name, err := dec.Bytes(b[off : off+end])
		if err != nil {
			return fmt.Errorf("index: RNAM: room %d name: %w", room, err)
		}
		names[room] = string(name)
		off += end + 1
	}
}

func tableCount(id format.BlockID, b []byte, elemSize int) (int, int, error) {
	head, ok := buf.Slice(b, 0, 2)
	if !ok {
		return 0, 0, fmt.Errorf("index: %s count: %w", id, format.ErrTruncated)
	}
	count := int(buf.U16LE(head))
	end, err := buf.CheckListBounds(len(b), 2, count, elemSize)
	if err != nil {
		return 0, 0, fmt.Errorf("index: %s: %w: %w", id, format.ErrTruncated, err)
	}
	return count, end, nil
}

func parseU8Table(id format.BlockID, b []byte) ([]uint8, error) {
	count, end, err := tableCount(id, b, 1)
	if err != nil {
		return nil, err
	}
	out := make([]uint8, count)
	copy(out, b[2:end])
	return out, nil
}

func parseU32Table(id format.BlockID, b []byte) ([]uint32, error) {
	count, _, err := tableCount(id, b, 4)
	if err != nil {
		return nil, err
	}
	return readU32s(b, 2, count), nil
}

func readU32s(b []byte, off, count int) []uint32 {
	out := make([]uint32, count)
	for i := range out {
		out[i] = buf.U32LE(b[off+4*i:])
	}
	return out
}

func parseDirectory(id format.BlockID, b []byte) (*Directory, error) {
	count, _, err := tableCount(id, b, 5)
	if err != nil {
		return nil, err
	}
	d := &Directory{ID: id}
	d.RoomNumbers = make([]uint8, count)
	copy(d.RoomNumbers, b[2:2+count])
	d.Offsets = readU32s(b, 2+count, count)

	sizesAt := 2 + 5*count
	if end, err := buf.CheckListBounds(len(b), sizesAt, count, 4); err == nil && count > 0 {
		d.Sizes = readU32s(b[:end], sizesAt, count)
	}
	return d, nil
}
