package decompile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/joshuapare/scummkit/internal/cipher"
	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/scan"
	"github.com/joshuapare/scummkit/pkg/types"
)

const projectFile = "project.txt"

// Stats summarises what a Decompiler has emitted so far.
type Stats struct {
	Disks  int
	Rooms  int
	Blocks int
	Bytes  int64
}

// Decompiler decodes disks one after another against a single index and
// accumulates the room table across them. It is not safe for concurrent use.
type Decompiler struct {
	ix    Index
	write WriteFunc
	opt   Options
	log   *slog.Logger

	containers map[format.BlockID]string
	rooms      Rooms
	stats      Stats

	// per-room scratch, reused across rooms
	payload  []byte
	counters Counters
	scu      descriptor
}

// New returns a Decompiler emitting artifacts through write.
func New(ix Index, write WriteFunc, opt Options) *Decompiler {
	return &Decompiler{
		ix:         ix,
		write:      write,
		opt:        opt,
		log:        opt.logger(),
		containers: opt.containers(),
		counters:   make(Counters),
	}
}

// Rooms returns the rooms registered so far.
func (d *Decompiler) Rooms() *Rooms { return &d.rooms }

// Stats returns emission counters.
func (d *Decompiler) Stats() Stats {
	s := d.stats
	s.Rooms = d.rooms.Len()
	return s
}

// Disk decodes one encoded disk image. r is read from its start; disks must
// be passed in ascending order.
func (d *Decompiler) Disk(ctx context.Context, disk uint8, r io.ReadSeeker) error {
	s := cipher.NewStream(r, d.opt.key())

	size, err := scan.Length(s)
	if err != nil {
		return classify(err, disk, -1, "measure disk")
	}

	root := scan.New(size)
	lecf, err := root.NextMustBe(s, format.LECF)
	if err == io.EOF {
		return &types.Error{Kind: types.ErrKindMissingBlock, Msg: "empty disk, expected LECF", Disk: disk, Offset: 0}
	}
	if err != nil {
		return classify(err, disk, 0, "root container")
	}

	rooms, err := scan.NewRegion(s, lecf.Len)
	if err != nil {
		return classify(err, disk, lecf.Offset, "LECF")
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		pos, err := scan.Position(s)
		if err != nil {
			return classify(err, disk, -1, "room container")
		}
		lflf, err := rooms.NextMustBe(s, format.LFLF)
		if err == io.EOF {
			break
		}
		if err != nil {
			return classify(err, disk, pos, "room container")
		}
		if err := d.room(s, disk, lflf); err != nil {
			return err
		}
	}
	if err := rooms.Finish(s); err != nil {
		return classify(err, disk, lecf.Offset, "LECF")
	}
	if err := root.Finish(s); err != nil {
		return classify(err, disk, -1, "disk")
	}

	d.stats.Disks++
	d.log.Info("disk decompiled", "disk", disk, "bytes", size)
	return nil
}

// room decodes one LFLF whose payload r is positioned at.
func (d *Decompiler) room(r io.ReadSeeker, disk uint8, lflf scan.Block) error {
	number, ok := d.ix.RoomNumberFor(disk, lflf.Offset)
	if !ok {
		return &types.Error{
			Kind:   types.ErrKindIndex,
			Msg:    "room container not in index",
			Disk:   disk,
			Offset: lflf.HeaderOffset(),
		}
	}
	if number < 0 {
		return &types.Error{
			Kind:   types.ErrKindIndex,
			Msg:    fmt.Sprintf("index maps room container to room %d", number),
			Disk:   disk,
			Offset: lflf.HeaderOffset(),
		}
	}
	name := RoomName(d.ix, number)

	if prev, dup := d.rooms.Get(number); dup {
		if d.opt.StrictRooms {
			return &types.Error{
				Kind:   types.ErrKindIndex,
				Msg:    fmt.Sprintf("room %d already read from disk %d", number, prev.Disk),
				Disk:   disk,
				Offset: lflf.HeaderOffset(),
			}
		}
		d.log.Warn("room seen again, replacing", "room", number, "name", name, "previous_disk", prev.Disk, "disk", disk)
	}
	d.rooms.Set(Room{Number: number, Name: name, Disk: disk})

	clear(d.counters)
	d.scu.reset()

	sc, err := scan.NewRegion(r, lflf.Len)
	if err != nil {
		return classify(err, disk, lflf.Offset, "LFLF")
	}
	for {
		b, err := sc.Next(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return classify(err, disk, lflf.Offset, fmt.Sprintf("room %d", number))
		}
		if prefix, ok := d.containers[b.ID]; ok {
			err = d.container(r, disk, name, b, prefix)
		} else {
			err = d.leaf(r, disk, name, b, "")
		}
		if err != nil {
			return err
		}
	}
	if err := sc.Finish(r); err != nil {
		return classify(err, disk, lflf.Offset, fmt.Sprintf("room %d", number))
	}

	if err := d.emit(name+"/room.scu", d.scu.bytes()); err != nil {
		return err
	}
	d.log.Info("room decompiled", "room", number, "name", name, "disk", disk)
	return nil
}

// container decodes a room child whose payload is a block region. Its
// children are all leaves.
func (d *Decompiler) container(r io.ReadSeeker, disk uint8, room string, b scan.Block, prefix string) error {
	tag, ok := b.ID.Text()
	if !ok {
		return tagTextError(b.ID, disk, b.HeaderOffset())
	}
	d.scu.open(tag)

	sc, err := scan.NewRegion(r, b.Len)
	if err != nil {
		return classify(err, disk, b.Offset, tag)
	}
	for {
		child, err := sc.Next(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return classify(err, disk, b.Offset, tag)
		}
		if err := d.leaf(r, disk, room, child, prefix); err != nil {
			return err
		}
	}
	if err := sc.Finish(r); err != nil {
		return classify(err, disk, b.Offset, tag)
	}

	d.scu.close()
	return nil
}

// leaf copies one block payload out, numbers it and records it.
func (d *Decompiler) leaf(r io.ReadSeeker, disk uint8, room string, b scan.Block, prefix string) error {
	n := int(b.Len)
	d.payload = slices.Grow(d.payload[:0], n)[:n]
	if _, err := io.ReadFull(r, d.payload); err != nil {
		return classify(err, disk, b.Offset, fmt.Sprintf("read %s payload", b.ID))
	}

	tag, ok := b.ID.Text()
	if !ok {
		return tagTextError(b.ID, disk, b.HeaderOffset())
	}

	id, err := ResolveIdentity(d.ix, b.ID, disk, b.HeaderOffset(), d.payload)
	if err != nil {
		return err
	}
	if id.Tier == TierCounter {
		id.Number = d.counters.Next(b.ID)
	}

	rel := prefix + tag + "/" + strconv.FormatInt(int64(id.Number), 10) + ".bin"
	if err := d.emit(room+"/"+rel, d.payload); err != nil {
		return err
	}
	d.scu.leaf(tag, id, rel)

	d.stats.Blocks++
	d.stats.Bytes += b.Len
	d.log.Debug("block", "tag", tag, "number", id.Number, "tier", id.Tier, "path", rel, "offset", b.HeaderOffset())
	return nil
}

// Finish writes the project manifest. Call it once after the last disk.
func (d *Decompiler) Finish() error {
	return d.emit(projectFile, d.rooms.Manifest())
}

func (d *Decompiler) emit(path string, data []byte) error {
	if err := d.write(path, data); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "write " + path, Offset: -1, Err: err}
	}
	return nil
}
