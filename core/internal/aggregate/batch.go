package aggregate

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"exc-aggregator/tracker"
)

// CollectAll collects every tracker that has a folder under the Kronos root
// and returns how many succeeded. A failing tracker is logged and skipped;
// output it already wrote is left in place. Only an unlistable Kronos root
// is returned as an error.
func CollectAll(env Env) (int, error) {
	log := env.logger()

	dirs, err := env.FS.ListDirs(env.Roots.Kronos)
	if err != nil {
		return 0, fmt.Errorf("%w: list %s: %w", tracker.ErrIO, env.Roots.Kronos, err)
	}

	count := 0
	for _, dir := range dirs {
		name := filepath.Base(dir)
		if !tracker.IsSerial(name) {
			log.Debug("skipping non-tracker folder", zap.String("folder", name))
			continue
		}
		if _, err := CollectTracker(env, name); err != nil {
			log.Warn("tracker skipped",
				zap.String("serial", name),
				zap.String("kind", string(tracker.Classify(err))),
				zap.Error(err))
			continue
		}
		count++
	}

	log.Info("batch finished", zap.Int("candidates", len(dirs)), zap.Int("collected", count))
	return count, nil
}
