// Package godense provides a generic dense matrix container with a direct
// (non-iterative) linear-algebra kernel, designed for embedding into other
// numeric Go code.
//
// # Features
//
// - Generic Container: Dense[T] over integer and floating-point scalars
// - Direct Kernel: pivot-free Crout LU decomposition, determinant, inverse
// - Robust Error Handling: structured errors with stack traces, never a
//   silent Inf/NaN
// - Fresh Results: every operation returns an independently owned matrix
// - gonum Interop: convert to and from gonum/mat for everything beyond the
//   direct kernel
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/godense/linalg"
//	    "github.com/YuminosukeSato/godense/matrix"
//	)
//
//	func main() {
//	    a, err := matrix.FromRows([][]float64{{4, 3}, {6, 3}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    l, u, err := linalg.LU(a)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Print(l, u)
//
//	    det, err := linalg.Det(a)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("det =", det)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - matrix: generic container, elementwise and product operators
//   - linalg: LU decomposition, determinant, inverse (float64)
//   - pkg/errors: structured error types and panic recovery
//   - pkg/log: structured logging interface with a zerolog backend
//
// # Numerical Caveats
//
// The kernel performs no pivoting. Matrices whose leading principal minors
// vanish fail with a SingularMatrixError even when they are invertible, and
// rounding error accumulates on the inverse path. Callers needing robust
// inversion should solve linear systems directly (see matrix.ToGonum) rather
// than materializing an inverse.
package godense
