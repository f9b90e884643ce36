package evidence

import (
	"path/filepath"
	"time"

	"exc-aggregator/fsys"
)

type Artifact struct {
	RelativePath string            `json:"relative_path"`
	Kind         string            `json:"kind"`
	WrittenAt    string            `json:"written_at"`
	SizeBytes    int64             `json:"size_bytes"`
	SHA256       string            `json:"sha256"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Describe hashes a written file and returns it relative to base.
func Describe(f fsys.FS, base, path, kind string) (Artifact, error) {
	sha, size, err := SHA256File(f, path)
	if err != nil {
		return Artifact{}, err
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	return Artifact{
		RelativePath: filepath.ToSlash(rel),
		Kind:         kind,
		WrittenAt:    time.Now().UTC().Format(time.RFC3339Nano),
		SizeBytes:    size,
		SHA256:       sha,
	}, nil
}
