//go:build netlib

package skipgram

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// Built with -tags netlib, matrix products run on the system's native BLAS.
func init() {
	blas64.Use(netlib.Implementation{})
}
