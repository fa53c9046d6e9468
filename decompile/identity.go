package decompile

import (
	"fmt"

	"github.com/joshuapare/scummkit/internal/buf"
	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/index"
	"github.com/joshuapare/scummkit/pkg/types"
)

// Index is the part of the archive index the decompiler consults.
// *index.Index implements it.
type Index interface {
	RoomNumberFor(disk uint8, offset int64) (int, bool)
	RoomName(room int) (string, bool)
	DirectoryFor(id format.BlockID) (*index.Directory, bool)
	ObjectNumberIn(dir *index.Directory, disk uint8, headerOffset int64) (int32, bool)
}

var _ Index = (*index.Index)(nil)

// Tier names the source a block number was taken from.
type Tier int

const (
	TierIndex   Tier = iota + 1 // index directory
	TierLocal                   // number stored in the payload
	TierCounter                 // per-room occurrence counter
)

func (t Tier) String() string {
	switch t {
	case TierIndex:
		return "index"
	case TierLocal:
		return "local"
	case TierCounter:
		return "counter"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Identity is the resolved number of a leaf block.
type Identity struct {
	Tier   Tier
	Number int32
}

// Glob returns the index-recorded number, present only for TierIndex.
func (id Identity) Glob() (int32, bool) {
	return id.Number, id.Tier == TierIndex
}

// ResolveIdentity decides which source numbers a leaf block. For TierCounter
// the Number is left at zero; the caller draws it from the room's Counters so
// the function itself has no state.
func ResolveIdentity(ix Index, id format.BlockID, disk uint8, headerOffset int64, payload []byte) (Identity, error) {
	if dir, ok := ix.DirectoryFor(id); ok {
		n, ok := ix.ObjectNumberIn(dir, disk, headerOffset)
		if !ok {
			return Identity{}, &types.Error{
				Kind:   types.ErrKindIndex,
				Msg:    fmt.Sprintf("%s block missing from index directory %s", id, dir.ID),
				Disk:   disk,
				Offset: headerOffset,
			}
		}
		return Identity{Tier: TierIndex, Number: n}, nil
	}

	n, ok, err := localNumber(id, payload)
	if err != nil {
		return Identity{}, &types.Error{
			Kind:   types.ErrKindLocalScript,
			Msg:    err.Error(),
			Disk:   disk,
			Offset: headerOffset,
		}
	}
	if ok {
		return Identity{Tier: TierLocal, Number: n}, nil
	}
	return Identity{Tier: TierCounter}, nil
}

// localNumber reads the number a self-numbered block stores at the start of
// its payload.
func localNumber(id format.BlockID, payload []byte) (int32, bool, error) {
	if id != format.LSC2 {
		return 0, false, nil
	}
	if len(payload) < format.LocalNumberSize {
		return 0, false, fmt.Errorf("%s payload is %d bytes, need %d for its number",
			id, len(payload), format.LocalNumberSize)
	}
	return buf.I32LE(payload), true, nil
}

// Counters numbers blocks that have no other identity, per tag.
type Counters map[format.BlockID]int32

// Next returns the next number for id, starting at 1.
func (c Counters) Next(id format.BlockID) int32 {
	c[id]++
	return c[id]
}
