// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/internal/source"
	"github.com/katalvlaran/intmatrix/matrix"
)

// statsReport is the JSON printed by the stats command.
type statsReport struct {
	Component string `json:"component"`
	State     any    `json:"state"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [FILE...]",
		Short: "Load the given matrices and print the live-instance registry as JSON",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ms []*matrix.Dense
			if len(args) > 0 {
				var err error
				if ms, err = a.load(args); err != nil {
					return err
				}
			}
			defer source.CloseAll(ms)

			var (
				intro introspection.Introspectable = matrix.DefaultRegistry
				comp  introspection.Component      = matrix.DefaultRegistry
			)
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(statsReport{
				Component: comp.ComponentType(),
				State:     intro.State(),
			})
		},
	}
}
