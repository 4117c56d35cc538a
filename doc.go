// SPDX-License-Identifier: MIT

// Package intmatrix is a small toolkit for dense integer matrices.
//
// Everything lives in subpackages:
//
//	matrix/         - the Dense value type: construction, bounds-checked access,
//	                  Add/Sub/Mul, equality, size ordering, live-instance registry
//	matrixio/       - YAML documents and the plain-text dump
//	internal/source - loading matrices from files, glob expansion, file watching
//	internal/cli    - the cobra command tree behind cmd/intmatrix
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewIdentity(2)
//	p, _ := matrix.Mul(a, b)
//	fmt.Print(p) // "1 2\n3 4\n"
//	_ = p.Close()
//
// Every constructed matrix is counted by a Registry until Close is called;
// matrix.LiveInstances reports the count for the default registry.
package intmatrix
