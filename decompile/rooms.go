package decompile

import (
	"bytes"
	"fmt"
	"strconv"
)

// Room is a room seen while decompiling.
type Room struct {
	Number int
	Name   string
	Disk   uint8
}

// RoomName returns the index name of room, or "room<N>" when it has none.
func RoomName(ix Index, room int) string {
	if name, ok := ix.RoomName(room); ok {
		return name
	}
	return "room" + strconv.Itoa(room)
}

// Rooms is a sparse collection indexed by room number.
type Rooms struct {
	slots []*Room
}

// Set stores r and returns the room it replaced, if any.
func (rs *Rooms) Set(r Room) (Room, bool) {
	if r.Number < 0 {
		panic(fmt.Sprintf("decompile: negative room number %d", r.Number))
	}
	if r.Number >= len(rs.slots) {
		rs.slots = append(rs.slots, make([]*Room, r.Number+1-len(rs.slots))...)
	}
	prev := rs.slots[r.Number]
	rs.slots[r.Number] = &r
	if prev == nil {
		return Room{}, false
	}
	return *prev, true
}

// Get returns the room stored at number.
func (rs *Rooms) Get(number int) (Room, bool) {
	if number < 0 || number >= len(rs.slots) || rs.slots[number] == nil {
		return Room{}, false
	}
	return *rs.slots[number], true
}

// All returns the populated rooms in ascending number order.
func (rs *Rooms) All() []Room {
	var out []Room
	for _, r := range rs.slots {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// Len returns the number of populated rooms.
func (rs *Rooms) Len() int {
	n := 0
	for _, r := range rs.slots {
		if r != nil {
			n++
		}
	}
	return n
}

// Manifest renders project.txt: one `room <n> "<name>" disk=<d>` line per
// populated room, in ascending room order.
func (rs *Rooms) Manifest() []byte {
	var b bytes.Buffer
	for _, r := range rs.All() {
		fmt.Fprintf(&b, "room %d %s disk=%d\n", r.Number, strconv.Quote(r.Name), r.Disk)
	}
	return b.Bytes()
}
