package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/testutil"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// resetFlags restores every global flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut, logJSON, logFile = false, false, false, false, ""
	extractOut, extractZip, extractDisks, extractZstd, extractStrict, extractPlain = "out", "", 0, false, false, false
	scanDepth, scanKey = -1, int(format.XORKey)
}

// writeGame creates game.he0 (index), game.he1 and game.he2 in a temp dir and
// returns the index path. Room 1 "lobby" lives on disk 1 with script 1 and a
// local script 2049; room 2 has no name and lives on disk 2.
func writeGame(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	const roomPayload = 2 * format.HeaderSize

	rnam := binary.LittleEndian.AppendUint16(nil, 1)
	rnam = append(rnam, "lobby\x00"...)
	rnam = binary.LittleEndian.AppendUint16(rnam, 0)

	dlfl := binary.LittleEndian.AppendUint16(nil, 3)
	for _, off := range []uint32{0, roomPayload, roomPayload} {
		dlfl = binary.LittleEndian.AppendUint32(dlfl, off)
	}
	disks := append(binary.LittleEndian.AppendUint16(nil, 3), 0, 1, 2)

	dirs := append(binary.LittleEndian.AppendUint16(nil, 2), 0, 1)
	dirs = binary.LittleEndian.AppendUint32(dirs, 0)
	dirs = binary.LittleEndian.AppendUint32(dirs, 0)

	write := func(name string, blocks ...testutil.Block) {
		plain := testutil.Encode(blocks...)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), testutil.Encrypt(plain, format.XORKey), 0o644))
	}
	write("game.he0",
		testutil.Raw("RNAM", rnam),
		testutil.Raw("DLFL", dlfl),
		testutil.Raw("DISK", disks),
		testutil.Raw("DIRS", dirs),
	)
	write("game.he1", testutil.Container("LECF", testutil.Container("LFLF",
		testutil.Raw("SCRP", []byte("abc")),
		testutil.Container("RMDA", testutil.Raw("LSC2", []byte{0x01, 0x08, 0, 0})),
	)))
	write("game.he2", testutil.Container("LECF", testutil.Container("LFLF",
		testutil.Raw("XXXX", []byte("z")),
	)))
	return filepath.Join(dir, "game.he0")
}
