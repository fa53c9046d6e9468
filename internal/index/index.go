// Package index decodes the archive index file and answers the lookups the
// decompiler needs: which room a container belongs to, what a room is called,
// and which object number a block carries.
//
// The index file is XOR-encoded like the disks and is a flat sequence of
// blocks. The blocks this package understands are:
//
//	RNAM  repeated { u16le room, NUL-terminated name }, ended by room 0
//	DLFL  u16le count, count × u32le LFLF payload offsets
//	DISK  u16le count, count × u8 disk numbers
//	DIRx  u16le count, count × u8 rooms, count × u32le offsets[, count × u32le sizes]
//
// Directory offsets are relative to the payload of the owning room's LFLF, so
// the absolute header position of object i is DLFL[room_i] + offsets[i].
package index

import (
	"sort"

	"github.com/joshuapare/scummkit/internal/format"
)

// Directory maps object numbers (positions in the table) to the room and
// offset holding the object.
type Directory struct {
	ID          format.BlockID
	RoomNumbers []uint8
	Offsets     []uint32
	// Sizes is empty when the index does not record sizes.
	Sizes []uint32

	byOffset map[location]int32
}

// Len returns the number of slots in the directory.
func (d *Directory) Len() int { return len(d.RoomNumbers) }

type location struct {
	disk   uint8
	offset int64
}

// Room is one row of the room table.
type Room struct {
	Number int
	Name   string
	Named  bool
	Disk   uint8
	Offset uint32
}

// Index is a decoded archive index. It is read-only after construction and
// safe for concurrent lookups.
type Index struct {
	names       map[int]string
	disks       []uint8
	offsets     []uint32
	directories map[format.BlockID]*Directory

	roomByOffset map[location]int
}

// blockDirectories lists the leaf tags whose object numbers are recorded in a
// directory.
var blockDirectories = map[format.BlockID]format.BlockID{
	format.RMIM: format.DIRI,
	format.RMDA: format.DIRR,
	format.SCRP: format.DIRS,
	format.SOUN: format.DIRN,
	format.DIGI: format.DIRN,
	format.TALK: format.DIRN,
	format.WSOU: format.DIRN,
	format.AKOS: format.DIRC,
	format.COST: format.DIRC,
	format.CHAR: format.DIRF,
	format.AWIZ: format.DIRM,
	format.MULT: format.DIRM,
	format.TLKE: format.DIRT,
}

// DirectoryTag returns the directory block recording objects of kind id.
func DirectoryTag(id format.BlockID) (format.BlockID, bool) {
	dir, ok := blockDirectories[id]
	return dir, ok
}

func isDirectory(id format.BlockID) bool {
	switch id {
	case format.DIRI, format.DIRR, format.DIRS, format.DIRN,
		format.DIRC, format.DIRF, format.DIRM, format.DIRT:
		return true
	}
	return false
}

// New assembles an index from already decoded tables. disks and offsets are
// indexed by room number.
func New(names map[int]string, disks []uint8, offsets []uint32, dirs ...*Directory) *Index {
	ix := &Index{
		names:       names,
		disks:       disks,
		offsets:     offsets,
		directories: make(map[format.BlockID]*Directory, len(dirs)),
	}
	if ix.names == nil {
		ix.names = map[int]string{}
	}
	for _, d := range dirs {
		ix.directories[d.ID] = d
	}
	ix.build()
	return ix
}

func (ix *Index) build() {
	ix.roomByOffset = make(map[location]int, len(ix.offsets))
	for room := range ix.offsets {
		loc, ok := ix.roomLocation(room)
		if !ok {
			continue
		}
		if _, dup := ix.roomByOffset[loc]; !dup {
			ix.roomByOffset[loc] = room
		}
	}

	for _, d := range ix.directories {
		d.byOffset = make(map[location]int32, len(d.RoomNumbers))
		for i, room := range d.RoomNumbers {
			if i >= len(d.Offsets) {
				break
			}
			base, ok := ix.roomLocation(int(room))
			if !ok {
				continue
			}
			loc := location{disk: base.disk, offset: base.offset + int64(d.Offsets[i])}
			if _, dup := d.byOffset[loc]; !dup {
				d.byOffset[loc] = int32(i)
			}
		}
	}
}

// roomLocation returns where a room's LFLF payload lives. Rooms without a disk
// or offset entry, and the unused zero slot, have no location.
func (ix *Index) roomLocation(room int) (location, bool) {
	if room < 0 || room >= len(ix.offsets) || room >= len(ix.disks) {
		return location{}, false
	}
	if ix.offsets[room] == 0 && ix.disks[room] == 0 {
		return location{}, false
	}
	return location{disk: ix.disks[room], offset: int64(ix.offsets[room])}, true
}

// RoomNumberFor returns the room whose LFLF payload starts at offset on disk.
func (ix *Index) RoomNumberFor(disk uint8, offset int64) (int, bool) {
	room, ok := ix.roomByOffset[location{disk: disk, offset: offset}]
	return room, ok
}

// RoomName returns the recorded name of room, if any.
func (ix *Index) RoomName(room int) (string, bool) {
	name, ok := ix.names[room]
	return name, ok
}

// DirectoryFor returns the directory recording objects with tag id. A tag
// without a directory is never index-backed.
func (ix *Index) DirectoryFor(id format.BlockID) (*Directory, bool) {
	tag, ok := blockDirectories[id]
	if !ok {
		return nil, false
	}
	d, ok := ix.directories[tag]
	return d, ok
}

// ObjectNumberIn returns the object number whose block header sits at
// headerOffset on disk, according to dir.
func (ix *Index) ObjectNumberIn(dir *Directory, disk uint8, headerOffset int64) (int32, bool) {
	if dir == nil {
		return 0, false
	}
	n, ok := dir.byOffset[location{disk: disk, offset: headerOffset}]
	return n, ok
}

// Disks returns the highest disk number referenced by any room, or 0 when the
// index records none.
func (ix *Index) Disks() int {
	highest := 0
	for room := range ix.disks {
		if _, ok := ix.roomLocation(room); ok && int(ix.disks[room]) > highest {
			highest = int(ix.disks[room])
		}
	}
	return highest
}

// Rooms returns every room that has a location or a name, in room order.
func (ix *Index) Rooms() []Room {
	seen := make(map[int]bool)
	var rooms []Room
	add := func(n int) {
		if seen[n] {
			return
		}
		seen[n] = true
		r := Room{Number: n}
		r.Name, r.Named = ix.names[n]
		if loc, ok := ix.roomLocation(n); ok {
			r.Disk = loc.disk
			r.Offset = uint32(loc.offset)
		}
		rooms = append(rooms, r)
	}
	for n := range ix.offsets {
		if _, ok := ix.roomLocation(n); ok {
			add(n)
		}
	}
	for n := range ix.names {
		add(n)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
	return rooms
}

// Directories returns the decoded directories ordered by tag.
func (ix *Index) Directories() []*Directory {
	dirs := make([]*Directory, 0, len(ix.directories))
	for _, d := range ix.directories {
		dirs = append(dirs, d)
	}
	sort.Slice(dirs, func(i, j int) bool { return string(dirs[i].ID[:]) < string(dirs[j].ID[:]) })
	return dirs
}
