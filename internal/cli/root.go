// SPDX-License-Identifier: MIT

// Package cli implements the intmatrix command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/katalvlaran/intmatrix/matrixio"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries the flags and logger shared by every subcommand.
type app struct {
	verbose bool
	format  string
	logger  *slog.Logger
}

// NewRootCommand builds a fresh command tree. Each call is independent so
// tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{logger: slog.Default()}

	root := &cobra.Command{
		Use:   "intmatrix",
		Short: "Inspect and combine integer matrices stored as YAML documents",
		Long: `intmatrix loads dense integer matrices from YAML files and prints
sums, differences, products and comparisons. Results are printed one row per
line with elements separated by a single space, or as YAML with --format yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))

			if a.format != formatText && a.format != formatYAML {
				return fmt.Errorf("unknown --format %q (want %s or %s)", a.format, formatText, formatYAML)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logger.Debug("done", "command", cmd.Name(), "live_matrices", matrix.LiveInstances())
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.format, "format", formatText, "Output format: text or yaml")

	root.AddCommand(
		newShowCmd(a),
		newAddCmd(a),
		newSubCmd(a),
		newMulCmd(a),
		newSumCmd(a),
		newEqCmd(a),
		newCmpCmd(a),
		newIdentityCmd(a),
		newFillCmd(a),
		newWatchCmd(a),
		newStatsCmd(a),
	)

	return root
}

// Execute runs the command tree against os.Args.
// This is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

// print writes m in the selected format.
func (a *app) print(w io.Writer, m matrix.Matrix) error {
	if a.format == formatYAML {
		return matrixio.Encode(w, m)
	}

	return matrixio.WriteText(w, m)
}
