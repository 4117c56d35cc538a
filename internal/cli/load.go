// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/intmatrix/internal/source"
	"github.com/katalvlaran/intmatrix/matrix"
)

// load resolves args (literal paths or doublestar patterns) and decodes every
// file. The caller owns the returned matrices.
func (a *app) load(args []string) ([]*matrix.Dense, error) {
	paths, err := source.Resolve(args...)
	if err != nil {
		return nil, err
	}
	ms, err := source.LoadAll(paths)
	if err != nil {
		return nil, err
	}
	for i, m := range ms {
		a.logger.Debug("loaded matrix", "path", paths[i], "shape", m.Shape().String())
	}

	return ms, nil
}
