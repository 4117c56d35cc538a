// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/internal/source"
	"github.com/katalvlaran/intmatrix/matrix"
)

// foldFunc combines loaded operands into one result.
type foldFunc func(ms ...matrix.Matrix) (*matrix.Dense, error)

// runFold loads args, applies fold and prints the result.
func (a *app) runFold(cmd *cobra.Command, args []string, fold foldFunc) error {
	ms, err := a.load(args)
	if err != nil {
		return err
	}
	defer source.CloseAll(ms)

	res, err := fold(source.AsMatrices(ms)...)
	if err != nil {
		return err
	}
	defer res.Close()

	return a.print(cmd.OutOrStdout(), res)
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add FILE FILE...",
		Short: "Add matrices of identical shape",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFold(cmd, args, matrix.SumAll)
		},
	}
}

func newSubCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sub A B",
		Short: "Subtract B from A",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFold(cmd, args, func(ms ...matrix.Matrix) (*matrix.Dense, error) {
				return matrix.Sub(ms[0], ms[1])
			})
		},
	}
}

func newMulCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mul FILE FILE...",
		Short: "Multiply matrices left to right",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFold(cmd, args, matrix.ProductAll)
		},
	}
}

func newSumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sum PATTERN...",
		Short: "Add every matrix matched by the patterns",
		Long: `Expand each doublestar pattern (for example 'data/**/*.yaml'), sort the
matches and add all matrices. A single match is printed unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFold(cmd, args, matrix.SumAll)
		},
	}
}
