// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/internal/source"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE...",
		Short: "Print matrices",
		Long:  `Print every matrix named by the arguments. Arguments may be doublestar patterns.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args)
			if err != nil {
				return err
			}
			defer source.CloseAll(ms)

			out := cmd.OutOrStdout()
			for i, m := range ms {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := a.print(out, m); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
