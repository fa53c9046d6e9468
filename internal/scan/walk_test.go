package scan

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/testutil"
)

func sampleDisk() []byte {
	return testutil.Container("LECF",
		testutil.Container("LFLF",
			testutil.Raw("RMIM", []byte{1, 2}),
			testutil.Container("RMDA", testutil.Raw("OBCD", []byte{3})),
		),
	).Bytes()
}

func isContainer(id format.BlockID) bool {
	return id == format.LECF || id == format.LFLF || id == format.RMDA
}

func TestWalkVisitsEveryBlock(t *testing.T) {
	data := sampleDisk()
	r := bytes.NewReader(data)

	var got []string
	err := Walk(r, New(int64(len(data))), WalkOptions{IsContainer: isContainer, MaxDepth: -1}, func(n Node) error {
		got = append(got, string(bytes.Repeat([]byte{' '}, n.Depth))+n.ID.String())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"LECF", " LFLF", "  RMIM", "  RMDA", "   OBCD"}, got)
}

func TestWalkMaxDepth(t *testing.T) {
	data := sampleDisk()
	r := bytes.NewReader(data)

	var got []Node
	err := Walk(r, New(int64(len(data))), WalkOptions{IsContainer: isContainer, MaxDepth: 1}, func(n Node) error {
		got = append(got, n)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Container)
	require.False(t, got[1].Container, "LFLF sits at the depth limit")
}

func TestWalkStopsOnVisitorError(t *testing.T) {
	data := sampleDisk()
	stop := errors.New("stop")

	err := Walk(bytes.NewReader(data), New(int64(len(data))), WalkOptions{IsContainer: isContainer, MaxDepth: -1},
		func(Node) error { return stop })
	require.ErrorIs(t, err, stop)
}
