package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"exc-aggregator/tracker"
)

func NewCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <serial>",
		Short: "Report which runs exist for a tracker without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sn, err := tracker.ParseSerial(args[0])
			if err != nil {
				return err
			}
			env, err := opts.env()
			if err != nil {
				return err
			}
			folders, missing := env.Finder().Resolve(sn)

			w := cmd.OutOrStdout()
			for _, root := range tracker.Roots {
				if dir, ok := folders[root]; ok {
					fmt.Fprintf(w, "%s\tfound\t%s\n", root, dir)
					continue
				}
				fmt.Fprintf(w, "%s\tmissing\t%s\n", root, env.Roots.Path(root))
			}
			fmt.Fprintf(w, "serial=%s complete=%t\n", sn.Folder(), len(missing) == 0)
			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", tracker.ErrIncompleteData, sn.Folder())
			}
			return nil
		},
	}
}
