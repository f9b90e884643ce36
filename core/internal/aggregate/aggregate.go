package aggregate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"exc-aggregator/analyzers/exc"
	"exc-aggregator/core/internal/report"
	"exc-aggregator/evidence"
	"exc-aggregator/fsys"
	"exc-aggregator/runs"
	"exc-aggregator/tracker"
)

// Env carries everything a collection call needs. It replaces global state;
// callers must not share one output directory between concurrent runs.
type Env struct {
	FS     fsys.FS
	Roots  tracker.RootPaths
	Output string
	Log    *zap.Logger
	RunID  string
}

func (e Env) logger() *zap.Logger {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	if e.RunID == "" {
		return log
	}
	return log.With(zap.String("run_id", e.RunID))
}

// WithRunID returns a copy of e tagged with a fresh run id if it has none.
func (e Env) WithRunID() Env {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	return e
}

func (e Env) Finder() *runs.Finder {
	return runs.NewFinder(e.FS, e.Roots, e.logger())
}

type Result struct {
	Serial    tracker.SerialNumber
	OutputDir string
	Record    *tracker.Record
	Artifacts []evidence.Artifact
}

// BuildRecord reduces the channel files of each resolved run folder.
func BuildRecord(f fsys.FS, sn tracker.SerialNumber, folders map[tracker.RunRoot]string) (*tracker.Record, error) {
	rec := tracker.NewRecord(sn)
	for _, root := range tracker.Roots {
		folder, ok := folders[root]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no %s run", tracker.ErrIncompleteData, sn.Folder(), root)
		}
		agg, err := exc.Reduce(f, folder)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", sn.Folder(), root, err)
		}
		rec.Set(root, tracker.Run{Folder: folder, Exc: agg})
	}
	return rec, nil
}

// CollectTracker validates, aggregates and reports one tracker. The serial
// may carry the SN prefix.
func CollectTracker(env Env, serial string) (Result, error) {
	sn, err := tracker.ParseSerial(serial)
	if err != nil {
		return Result{}, err
	}
	log := env.logger().With(zap.String("serial", sn.Folder()))

	folders, missing := env.Finder().Resolve(sn)
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, r := range missing {
			names[i] = r.String()
		}
		return Result{}, fmt.Errorf("%w: %s missing %s", tracker.ErrIncompleteData, sn.Folder(), strings.Join(names, ", "))
	}

	rec, err := BuildRecord(env.FS, sn, folders)
	if err != nil {
		return Result{}, err
	}

	out, err := report.Emit(env.FS, env.Output, rec)
	if err != nil {
		return Result{}, err
	}
	log.Info("tracker collected",
		zap.String("output", out.Dir), zap.Int("artifacts", len(out.Artifacts)))
	return Result{Serial: sn, OutputDir: out.Dir, Record: rec, Artifacts: out.Artifacts}, nil
}
