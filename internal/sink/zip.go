package sink

import (
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Method selects the compression used for zip entries.
type Method uint16

const (
	Deflate Method = Method(zip.Deflate)
	Store   Method = Method(zip.Store)
	Zstd    Method = Method(zstd.ZipMethodWinZip)
)

func (m Method) String() string {
	switch m {
	case Deflate:
		return "deflate"
	case Store:
		return "store"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Method(%d)", uint16(m))
	}
}

// Zip writes every artifact as an entry of a single zip archive. Entries are
// held until Close so that a rewritten path replaces its earlier data, as it
// does for Dir and Memory; entry order is the order of first write.
type Zip struct {
	zw       *zip.Writer
	closer   io.Closer
	method   Method
	modified time.Time
	pending  Memory
}

// NewZip wraps w. When w is also an io.Closer, Close closes it after
// finalising the central directory.
func NewZip(w io.Writer, method Method) *Zip {
	zw := zip.NewWriter(w)
	if method == Zstd {
		zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor(zstd.WithEncoderConcurrency(1)))
	}
	z := &Zip{zw: zw, method: method, modified: time.Now()}
	if c, ok := w.(io.Closer); ok {
		z.closer = c
	}
	return z
}

func (z *Zip) Write(name string, data []byte) error {
	return z.pending.Write(name, data)
}

func (z *Zip) flush() error {
	for _, f := range z.pending.Files {
		fw, err := z.zw.CreateHeader(&zip.FileHeader{
			Name:     f.Path,
			Method:   uint16(z.method),
			Modified: z.modified,
		})
		if err != nil {
			return fmt.Errorf("sink: zip entry %s: %w", f.Path, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("sink: zip entry %s: %w", f.Path, err)
		}
	}
	return nil
}

// Close writes every entry and the central directory, then closes the
// underlying writer.
func (z *Zip) Close() error {
	err := z.flush()
	if cerr := z.zw.Close(); err == nil {
		err = cerr
	}
	z.pending = Memory{}
	if z.closer != nil {
		if cerr := z.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Decompressors registers the readers needed for archives written by Zip.
func Decompressors(r *zip.Reader) {
	r.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())
}
