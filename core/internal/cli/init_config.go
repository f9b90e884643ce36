package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"exc-aggregator/core/internal/config"
)

func NewInitConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config",
		Short: "Write the default config file (never overwrites)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := config.WriteDefault(opts.fs, opts.configPath)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "config exists: %s\n", opts.configPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written: %s\n", opts.configPath)
			return nil
		},
	}
}
