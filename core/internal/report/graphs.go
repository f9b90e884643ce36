package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"exc-aggregator/evidence"
	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

// FindGraph returns the lexicographically first file in folder whose name
// contains the slit error graph marker.
func FindGraph(f fsys.FS, folder string) (string, bool, error) {
	files, err := f.ListFiles(folder)
	if err != nil {
		return "", false, fmt.Errorf("%w: list %s: %w", tracker.ErrIO, folder, err)
	}
	sort.Strings(files)
	for _, file := range files {
		if strings.Contains(filepath.Base(file), tracker.GraphMarker) {
			return file, true, nil
		}
	}
	return "", false, nil
}

// Not atomic: the old copy is deleted before the new one is written.
func copyGraph(f fsys.FS, outputRoot, dir string, root tracker.RunRoot, folder string) (evidence.Artifact, bool, error) {
	src, ok, err := FindGraph(f, folder)
	if err != nil || !ok {
		return evidence.Artifact{}, false, err
	}

	dst := filepath.Join(dir, GraphName(root))
	if f.Exists(dst) {
		if err := f.Remove(dst); err != nil {
			return evidence.Artifact{}, false, fmt.Errorf("%w: remove %s: %w", tracker.ErrIO, dst, err)
		}
	}
	if err := f.Copy(src, dst); err != nil {
		return evidence.Artifact{}, false, fmt.Errorf("%w: copy %s: %w", tracker.ErrIO, src, err)
	}

	art, err := evidence.Describe(f, outputRoot, dst, "graph")
	if err != nil {
		return evidence.Artifact{}, false, fmt.Errorf("%w: %w", tracker.ErrIO, err)
	}
	art.Metadata = map[string]string{"source": src, "run_type": root.Label()}
	return art, true, nil
}
