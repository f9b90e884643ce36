package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"exc-aggregator/core/internal/aggregate"
)

func NewCollectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "collect <serial>",
		Short: "Collect exc data for one tracker (123456 or SN123456)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			res, err := aggregate.CollectTracker(env, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "serial=%s output=%s artifacts=%d\n",
				res.Serial.Folder(), res.OutputDir, len(res.Artifacts))
			return nil
		},
	}
}

func NewCollectAllCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "collect-all",
		Short: "Collect exc data for every tracker with a complete set of runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.env()
			if err != nil {
				return err
			}
			n, err := aggregate.CollectAll(env)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "collected=%d output=%s\n", n, env.Output)
			return nil
		},
	}
}
