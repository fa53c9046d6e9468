package sink

import (
	"bytes"
	"fmt"
	"slices"
)

// File is one artifact captured by Memory.
type File struct {
	Path string
	Data []byte
}

// Memory collects artifacts in write order. A repeated path replaces the
// earlier data but keeps its original position.
type Memory struct {
	Files []File
	index map[string]int
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{index: make(map[string]int)}
}

func (m *Memory) Write(name string, data []byte) error {
	if err := checkPath(name); err != nil {
		return err
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	data = bytes.Clone(data)
	if data == nil {
		data = []byte{}
	}
	if i, ok := m.index[name]; ok {
		m.Files[i].Data = data
		return nil
	}
	m.index[name] = len(m.Files)
	m.Files = append(m.Files, File{Path: name, Data: data})
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Get returns the data written at name.
func (m *Memory) Get(name string) ([]byte, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.Files[i].Data, true
}

// MustGet is Get for tests and callers that already know the path exists.
func (m *Memory) MustGet(name string) []byte {
	data, ok := m.Get(name)
	if !ok {
		panic(fmt.Sprintf("sink: no artifact at %q", name))
	}
	return data
}

// Paths returns artifact paths in write order.
func (m *Memory) Paths() []string {
	out := make([]string, len(m.Files))
	for i, f := range m.Files {
		out[i] = f.Path
	}
	return out
}

// Sorted returns artifact paths in lexical order.
func (m *Memory) Sorted() []string {
	out := m.Paths()
	slices.Sort(out)
	return out
}
