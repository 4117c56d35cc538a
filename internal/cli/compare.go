// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/internal/source"
	"github.com/katalvlaran/intmatrix/matrix"
)

func newEqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eq A B",
		Short: "Report whether two matrices have the same shape and elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args)
			if err != nil {
				return err
			}
			defer source.CloseAll(ms)

			verdict := "not equal"
			if matrix.Equal(ms[0], ms[1]) {
				verdict = "equal"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)

			return err
		},
	}
}

func newCmpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp A B",
		Short: "Compare two matrices by element count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := a.load(args)
			if err != nil {
				return err
			}
			defer source.CloseAll(ms)

			var verdict string
			switch matrix.CompareSize(ms[0], ms[1]) {
			case -1:
				verdict = "less"
			case 1:
				verdict = "greater"
			default:
				verdict = "same size"
			}
			a.logger.Debug("size comparison", "a", ms[0].Shape().String(), "b", ms[1].Shape().String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)

			return err
		},
	}
}
