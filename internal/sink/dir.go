package sink

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir writes each artifact as a file under Root, creating parent directories.
type Dir struct {
	Root string
	// Perm is the mode for new files. Zero means 0o644.
	Perm os.FileMode
}

// NewDir returns a Dir sink rooted at root, creating it if needed.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("sink: create %s: %w", root, err)
	}
	return &Dir{Root: root}, nil
}

func (d *Dir) Write(name string, data []byte) error {
	if err := checkPath(name); err != nil {
		return err
	}
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	full := filepath.Join(d.Root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	perm := d.Perm
	if perm == 0 {
		perm = 0o644
	}
	return os.WriteFile(full, data, perm)
}

// Close is a no-op; files are complete once Write returns.
func (d *Dir) Close() error { return nil }
