// Package runs decides whether complete data runs exist for a tracker.
package runs

import (
	"path/filepath"

	"go.uber.org/zap"

	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

type Finder struct {
	FS    fsys.FS
	Roots tracker.RootPaths
	Log   *zap.Logger
}

func NewFinder(f fsys.FS, roots tracker.RootPaths, log *zap.Logger) *Finder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Finder{FS: f, Roots: roots, Log: log}
}

// FindRun returns the first data run folder under root that belongs to sn
// and holds all channel files. Unlistable directories count as no data.
func (f *Finder) FindRun(root tracker.RunRoot, sn tracker.SerialNumber) (string, bool) {
	base := f.Roots.Path(root)
	rule := tracker.RuleFor(root, sn)

	trackerDirs, err := f.FS.ListDirs(base)
	if err != nil {
		f.Log.Debug("run root not listable",
			zap.String("root", root.String()), zap.String("path", base), zap.Error(err))
		return "", false
	}
	for _, dir := range trackerDirs {
		if !rule.Matches(filepath.Base(dir)) {
			continue
		}
		subdirs, err := f.FS.ListDirs(dir)
		if err != nil {
			f.Log.Debug("tracker folder not listable", zap.String("path", dir), zap.Error(err))
			continue
		}
		for _, sub := range subdirs {
			if tracker.IsDataRunFolder(filepath.Base(sub)) && f.hasAllChannels(sub) {
				return sub, true
			}
		}
	}
	return "", false
}

func (f *Finder) HasValidRun(root tracker.RunRoot, sn tracker.SerialNumber) bool {
	_, ok := f.FindRun(root, sn)
	return ok
}

func (f *Finder) hasAllChannels(dir string) bool {
	files, err := f.FS.ListFiles(dir)
	if err != nil {
		return false
	}
	var seen [tracker.Channels]bool
	for _, file := range files {
		if ch, ok := tracker.ChannelIndex(filepath.Base(file)); ok {
			seen[ch] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}

// Resolve finds the run folder for every root. Missing roots are returned
// in report order.
func (f *Finder) Resolve(sn tracker.SerialNumber) (map[tracker.RunRoot]string, []tracker.RunRoot) {
	found := make(map[tracker.RunRoot]string, len(tracker.Roots))
	var missing []tracker.RunRoot
	for _, root := range tracker.Roots {
		if dir, ok := f.FindRun(root, sn); ok {
			found[root] = dir
			continue
		}
		missing = append(missing, root)
	}
	return found, missing
}

func (f *Finder) TrackerHasCompleteData(sn tracker.SerialNumber) bool {
	for _, root := range tracker.Roots {
		if !f.HasValidRun(root, sn) {
			return false
		}
	}
	return true
}
