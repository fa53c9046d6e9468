package decompile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scummkit/internal/testutil"
	"github.com/joshuapare/scummkit/pkg/types"
)

func TestResolveIdentity_Tiers(t *testing.T) {
	ix := newFakeIndex().
		directory("SCRP", "DIRS").object("DIRS", 1, 0x40, 9).
		directory("LSC2", "DIRS").object("DIRS", 2, 0x80, 33)

	tests := []struct {
		name   string
		tag    string
		disk   uint8
		offset int64
		data   []byte
		want   Identity
	}{
		{"index", "SCRP", 1, 0x40, nil, Identity{Tier: TierIndex, Number: 9}},
		{"index before local", "LSC2", 2, 0x80, le32(200), Identity{Tier: TierIndex, Number: 33}},
		{"counter", "XXXX", 1, 0x40, le32(5), Identity{Tier: TierCounter}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveIdentity(ix, testutil.Tag(tt.tag), tt.disk, tt.offset, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIdentity_Local(t *testing.T) {
	ix := newFakeIndex()
	tests := []struct {
		data []byte
		want int32
	}{
		{le32(200), 200},
		{append(le32(2049), 0xff, 0xff), 2049},
		{le32(-3), -3},
	}
	for _, tt := range tests {
		got, err := ResolveIdentity(ix, testutil.Tag("LSC2"), 1, 0, tt.data)
		require.NoError(t, err)
		assert.Equal(t, Identity{Tier: TierLocal, Number: tt.want}, got)
	}
}

func TestResolveIdentity_Errors(t *testing.T) {
	ix := newFakeIndex().directory("SCRP", "DIRS").object("DIRS", 1, 0x40, 9)

	_, err := ResolveIdentity(ix, testutil.Tag("SCRP"), 2, 0x40, nil)
	require.ErrorIs(t, err, types.ErrIndexMismatch)

	_, err = ResolveIdentity(ix, testutil.Tag("SCRP"), 1, 0x48, nil)
	require.ErrorIs(t, err, types.ErrIndexMismatch)

	for _, short := range [][]byte{nil, {1}, {1, 2, 3}} {
		_, err = ResolveIdentity(ix, testutil.Tag("LSC2"), 1, 0, short)
		require.ErrorIs(t, err, types.ErrLocalScript)
	}
}

func TestIdentity_Glob(t *testing.T) {
	n, ok := Identity{Tier: TierIndex, Number: 4}.Glob()
	assert.True(t, ok)
	assert.Equal(t, int32(4), n)

	_, ok = Identity{Tier: TierLocal, Number: 4}.Glob()
	assert.False(t, ok)
}

func TestCounters(t *testing.T) {
	c := make(Counters)
	a, b := testutil.Tag("AAAA"), testutil.Tag("BBBB")
	assert.Equal(t, int32(1), c.Next(a))
	assert.Equal(t, int32(2), c.Next(a))
	assert.Equal(t, int32(1), c.Next(b))
	assert.Equal(t, int32(3), c.Next(a))
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "index", TierIndex.String())
	assert.Equal(t, "local", TierLocal.String())
	assert.Equal(t, "counter", TierCounter.String())
	assert.Equal(t, "Tier(0)", Tier(0).String())
}
