package decompile

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/scummkit/internal/index"
	"github.com/joshuapare/scummkit/internal/mmfile"
	"github.com/joshuapare/scummkit/pkg/types"
)

// maxDisks is the largest disk number an index can refer to.
const maxDisks = 255

// DiskPath derives the path of disk n from the index path by replacing its
// trailing digits: "game.he0" becomes "game.he1".
func DiskPath(indexPath string, n int) string {
	base := strings.TrimRight(indexPath, "0123456789")
	return base + strconv.Itoa(n)
}

// Run decompiles the game whose index lives at indexPath. Disk files are
// found next to it with DiskPath and decoded in ascending order, then the
// project manifest is written.
func Run(ctx context.Context, indexPath string, write WriteFunc, opt Options) (Stats, error) {
	ix, err := index.Load(indexPath, opt.key())
	if err != nil {
		return Stats{}, classify(err, 0, -1, "index "+indexPath)
	}

	disks := opt.Disks
	if disks == 0 {
		disks = max(ix.Disks(), 1)
	}
	if disks < 0 || disks > maxDisks {
		return Stats{}, &types.Error{
			Kind:   types.ErrKindConfig,
			Msg:    fmt.Sprintf("disk count %d out of range 1..%d", disks, maxDisks),
			Offset: -1,
		}
	}

	d := New(ix, write, opt)
	for n := 1; n <= disks; n++ {
		if err := runDisk(ctx, d, uint8(n), DiskPath(indexPath, n)); err != nil {
			return d.Stats(), err
		}
	}
	if err := d.Finish(); err != nil {
		return d.Stats(), err
	}
	return d.Stats(), nil
}

func runDisk(ctx context.Context, d *Decompiler, n uint8, path string) (err error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "open disk", Disk: n, Offset: -1, Err: err}
	}
	defer func() {
		if cerr := cleanup(); err == nil && cerr != nil {
			err = &types.Error{Kind: types.ErrKindIO, Msg: "unmap disk", Disk: n, Offset: -1, Err: cerr}
		}
	}()

	d.log.Debug("decompiling disk", "disk", n, "path", path)
	return d.Disk(ctx, n, bytes.NewReader(data))
}
