// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/matrix"
)

func parseDim(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, arg)
	}

	return n, nil
}

func newIdentityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "Print the N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseDim("N", args[0])
			if err != nil {
				return err
			}
			m, err := matrix.NewIdentity(n)
			if err != nil {
				return err
			}
			defer m.Close()

			return a.print(cmd.OutOrStdout(), m)
		},
	}
}

func newFillCmd(a *app) *cobra.Command {
	var fill int64
	cmd := &cobra.Command{
		Use:   "fill ROWS COLS",
		Short: "Print a ROWS×COLS matrix with every element set to --fill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseDim("ROWS", args[0])
			if err != nil {
				return err
			}
			cols, err := parseDim("COLS", args[1])
			if err != nil {
				return err
			}
			m, err := matrix.NewFilled(rows, cols, fill)
			if err != nil {
				return err
			}
			defer m.Close()

			return a.print(cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().Int64Var(&fill, "fill", 0, "Value of every element")

	return cmd
}
