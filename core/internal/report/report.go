package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"exc-aggregator/evidence"
	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

const header = "RunType\tRes_0Exc\tRes_1Exc\tRes_2Exc"

type Result struct {
	Dir       string
	Artifacts []evidence.Artifact
}

func LogName(sn tracker.SerialNumber) string { return sn.Folder() + "_Exc.log" }

func GraphName(root tracker.RunRoot) string {
	return root.Label() + "_" + tracker.GraphMarker
}

// Lines renders the report body: the header then one row per run root.
func Lines(rec *tracker.Record) []string {
	lines := []string{header}
	for _, root := range tracker.Roots {
		row := []string{root.Label()}
		for _, v := range rec.Runs[root].Exc.Values() {
			row = append(row, v.StringFixed(3))
		}
		lines = append(lines, strings.Join(row, "\t"))
	}
	return lines
}

// Emit writes the exc log and copies the graph images of a complete record
// into outputRoot/SN<digits>. Existing outputs are replaced.
func Emit(f fsys.FS, outputRoot string, rec *tracker.Record) (Result, error) {
	if !rec.Complete() {
		return Result{}, fmt.Errorf("%w: %s", tracker.ErrIncompleteData, rec.Serial.Folder())
	}

	dir := filepath.Join(outputRoot, rec.Serial.Folder())
	if err := f.MkdirAll(dir); err != nil {
		return Result{}, fmt.Errorf("%w: create %s: %w", tracker.ErrIO, dir, err)
	}

	logPath := filepath.Join(dir, LogName(rec.Serial))
	if err := f.WriteLines(logPath, Lines(rec)); err != nil {
		return Result{}, fmt.Errorf("%w: write %s: %w", tracker.ErrIO, logPath, err)
	}

	res := Result{Dir: dir}
	art, err := evidence.Describe(f, outputRoot, logPath, "exc_log")
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", tracker.ErrIO, err)
	}
	res.Artifacts = append(res.Artifacts, art)

	for _, root := range tracker.Roots {
		art, ok, err := copyGraph(f, outputRoot, dir, root, rec.Runs[root].Folder)
		if err != nil {
			return Result{}, err
		}
		if ok {
			res.Artifacts = append(res.Artifacts, art)
		}
	}
	return res, nil
}
