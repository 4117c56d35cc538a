// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/internal/source"
	"github.com/katalvlaran/intmatrix/matrix"
)

// kernels maps --op values to binary kernels.
var kernels = map[string]func(a, b matrix.Matrix) (*matrix.Dense, error){
	"add": matrix.Add,
	"sub": matrix.Sub,
	"mul": matrix.Mul,
}

func newWatchCmd(a *app) *cobra.Command {
	var op string
	cmd := &cobra.Command{
		Use:   "watch A B",
		Short: "Recompute A op B whenever either file changes",
		Long: `Print A op B, then watch both files and print the result again after every
change. Failures while recomputing (for example a shape mismatch introduced by an
edit) are logged and watching continues. Stops on SIGINT or SIGTERM.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kernel, ok := kernels[op]
			if !ok {
				return fmt.Errorf("unknown --op %q (want add, sub or mul)", op)
			}
			ctx := lifecycle.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			defer ctx.Stop()

			return a.watch(ctx, cmd, args, kernel)
		},
	}
	cmd.Flags().StringVar(&op, "op", "add", "Operation: add, sub or mul")

	return cmd
}

// watch prints the first result (failing hard on error) and then recomputes
// on every change until ctx is done.
func (a *app) watch(ctx context.Context, cmd *cobra.Command, args []string, kernel func(a, b matrix.Matrix) (*matrix.Dense, error)) error {
	compute := func() error {
		ms, err := source.LoadAll(args)
		if err != nil {
			return err
		}
		defer source.CloseAll(ms)

		res, err := kernel(ms[0], ms[1])
		if err != nil {
			return err
		}
		defer res.Close()

		return a.print(cmd.OutOrStdout(), res)
	}

	if err := compute(); err != nil {
		return err
	}

	return source.Watch(ctx, args, a.logger, func(path string) {
		a.logger.Info("change detected", "path", path)
		if err := compute(); err != nil {
			a.logger.Error("recompute failed", "error", err)
		}
	})
}
