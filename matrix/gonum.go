package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/godense/pkg/errors"
)

// ToGonum converts the matrix to a gonum *mat.Dense, widening the elements
// to float64. The returned matrix owns its own storage, so later mutations
// on either side are not reflected in the other.
//
// This is the bridge into the gonum ecosystem: solvers, eigendecompositions
// and everything else gonum/mat offers beyond this library's direct kernel.
func ToGonum[T Number](m *Dense[T]) *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum copies a gonum matrix into a freshly-owned Dense[float64].
// Returns ErrEmptyData when the source has a zero dimension.
func FromGonum(g mat.Matrix) (*Dense[float64], error) {
	if g == nil {
		return nil, errors.NewValueError("matrix.FromGonum", "nil matrix")
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "matrix.FromGonum")
	}

	out, err := New[float64](r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}
	return out, nil
}
