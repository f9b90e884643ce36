package fsys

import (
	"io"
	"os"
	"path/filepath"
	"sort"
)

// OS is backed by the local filesystem or a mounted share.
type OS struct {
	PermFile os.FileMode
	PermDir  os.FileMode
}

func NewOS() *OS { return &OS{PermFile: 0o644, PermDir: 0o755} }

var _ FS = (*OS)(nil)

func (o *OS) list(path string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(path, e.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		if isDir == dirs {
			out = append(out, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func (o *OS) ListDirs(path string) ([]string, error)  { return o.list(path, true) }
func (o *OS) ListFiles(path string) ([]string, error) { return o.list(path, false) }

func (o *OS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (o *OS) ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(b), nil
}

// WriteLines replaces path with lines via a temporary file and rename.
func (o *OS) WriteLines(path string, lines []string) error {
	if err := o.MkdirAll(filepath.Dir(path)); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, joinLines(lines), o.PermFile); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (o *OS) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, o.PermFile)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

func (o *OS) Remove(path string) error { return os.Remove(path) }

func (o *OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (o *OS) MkdirAll(path string) error { return os.MkdirAll(path, o.PermDir) }
