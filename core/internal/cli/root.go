package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"exc-aggregator/core/internal/aggregate"
	"exc-aggregator/core/internal/config"
	"exc-aggregator/core/internal/version"
	"exc-aggregator/fsys"
)

type rootOptions struct {
	configPath  string
	verbose     bool
	fixtureRoot string
	kronosRoot  string
	output      string

	fs     fsys.FS
	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{fs: fsys.NewOS()}

	cmd := &cobra.Command{
		Use:           "exc-aggregator",
		Short:         "Aggregate tracker exc data from fixture and Kronos runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.FileName, "Config file (.xml, .yaml or .yml); created with defaults if missing")
	pf.BoolVar(&opts.verbose, "verbose", false, "Debug logging")
	pf.StringVar(&opts.fixtureRoot, "fixture-root", "", "Override ImagerFixtureImagesPath")
	pf.StringVar(&opts.kronosRoot, "kronos-root", "", "Override KronosRectImagesPath")
	pf.StringVar(&opts.output, "output", "", "Override OutputFolderPath")

	cmd.AddCommand(NewCollectCmd(opts))
	cmd.AddCommand(NewCollectAllCmd(opts))
	cmd.AddCommand(NewCheckCmd(opts))
	cmd.AddCommand(NewInitConfigCmd(opts))
	cmd.AddCommand(NewVersionCmd())

	cmd.SetVersionTemplate(fmt.Sprintf("%s (%s/%s)\n", version.Version, runtime.GOOS, runtime.GOARCH))
	cmd.Version = version.Version

	return cmd
}

func (o *rootOptions) env() (aggregate.Env, error) {
	cfg, err := config.Load(o.fs, o.configPath)
	if err != nil {
		return aggregate.Env{}, err
	}
	if o.fixtureRoot != "" {
		cfg.ImagerFixtureImagesPath = o.fixtureRoot
	}
	if o.kronosRoot != "" {
		cfg.KronosRectImagesPath = o.kronosRoot
	}
	if o.output != "" {
		cfg.OutputFolderPath = o.output
	}
	return aggregate.Env{
		FS:     o.fs,
		Roots:  cfg.Roots(),
		Output: cfg.OutputFolderPath,
		Log:    o.logger,
	}.WithRunID(), nil
}
