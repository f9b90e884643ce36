package fsys

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Mem is an in-memory FS. It is not safe for concurrent use.
type Mem struct {
	dirs  map[string]bool
	files map[string][]byte
}

func NewMem() *Mem {
	return &Mem{dirs: map[string]bool{}, files: map[string][]byte{}}
}

var _ FS = (*Mem)(nil)

func clean(p string) string { return filepath.Clean(p) }

// AddDir creates path and its parents.
func (m *Mem) AddDir(path string) *Mem {
	for p := clean(path); ; p = filepath.Dir(p) {
		m.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return m
}

// AddFile stores data at path, creating parent directories.
func (m *Mem) AddFile(path string, data []byte) *Mem {
	p := clean(path)
	m.AddDir(filepath.Dir(p))
	m.files[p] = append([]byte(nil), data...)
	return m
}

func (m *Mem) AddLines(path string, lines ...string) *Mem {
	return m.AddFile(path, joinLines(lines))
}

func childrenOf[V any](set map[string]V, dir string) []string {
	var out []string
	for p := range set {
		if p != dir && filepath.Dir(p) == dir {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (m *Mem) ListDirs(path string) ([]string, error) {
	dir := clean(path)
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	return childrenOf(m.dirs, dir), nil
}

func (m *Mem) ListFiles(path string) ([]string, error) {
	dir := clean(path)
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	return childrenOf(m.files, dir), nil
}

func (m *Mem) ReadFile(path string) ([]byte, error) {
	b, ok := m.files[clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), b...), nil
}

func (m *Mem) ReadLines(path string) ([]string, error) {
	b, err := m.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(b), nil
}

func (m *Mem) WriteLines(path string, lines []string) error {
	p := clean(path)
	if m.dirs[p] {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrInvalid}
	}
	if err := m.MkdirAll(filepath.Dir(p)); err != nil {
		return err
	}
	m.files[p] = joinLines(lines)
	return nil
}

func (m *Mem) Copy(src, dst string) error {
	b, err := m.ReadFile(src)
	if err != nil {
		return err
	}
	d := clean(dst)
	if m.Exists(d) {
		return &fs.PathError{Op: "open", Path: dst, Err: fs.ErrExist}
	}
	if !m.dirs[filepath.Dir(d)] {
		return &fs.PathError{Op: "open", Path: dst, Err: fs.ErrNotExist}
	}
	m.files[d] = b
	return nil
}

func (m *Mem) Remove(path string) error {
	p := clean(path)
	if _, ok := m.files[p]; ok {
		delete(m.files, p)
		return nil
	}
	if m.dirs[p] {
		prefix := p + string(filepath.Separator)
		for k := range m.files {
			if strings.HasPrefix(k, prefix) {
				return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrInvalid}
			}
		}
		for k := range m.dirs {
			if strings.HasPrefix(k, prefix) {
				return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrInvalid}
			}
		}
		delete(m.dirs, p)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
}

func (m *Mem) Exists(path string) bool {
	p := clean(path)
	_, ok := m.files[p]
	return ok || m.dirs[p]
}

func (m *Mem) MkdirAll(path string) error {
	p := clean(path)
	if _, ok := m.files[p]; ok {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	m.AddDir(p)
	return nil
}
