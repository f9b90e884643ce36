// Package fsys is the filesystem capability consumed by the aggregation core.
// Listings return full paths in lexicographic order.
package fsys

import "strings"

type FS interface {
	ListDirs(path string) ([]string, error)
	ListFiles(path string) ([]string, error)
	ReadLines(path string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	// WriteLines creates missing parent directories and replaces path.
	WriteLines(path string, lines []string) error
	// Copy fails if dst already exists. A failed copy leaves no dst behind.
	Copy(src, dst string) error
	Remove(path string) error
	Exists(path string) bool
	MkdirAll(path string) error
}

func splitLines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(b), "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func joinLines(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
