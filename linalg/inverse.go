package linalg

import (
	"github.com/YuminosukeSato/godense/matrix"
	"github.com/YuminosukeSato/godense/pkg/errors"
	"github.com/YuminosukeSato/godense/pkg/log"
)

// Inv は正方行列 A の逆行列を返す。
// A = LU と分解した後、三角行列の後退代入で U⁻¹ と L⁻¹ を閉形式の漸化式で
// 求め、A⁻¹ = U⁻¹·L⁻¹ を返す。
//
// 非正方行列には DimensionError、分解が特異性を検出した場合は
// SingularMatrixError を返す。
//
// 注意: この経路はピボット選択を行わず丸め誤差が蓄積するため数値的に脆弱で
// ある。堅牢性が必要な場合は逆行列を実体化せず、連立一次方程式を直接解く
// こと（gonum/mat のソルバが利用できる。matrix.ToGonum を参照）。
func Inv[T matrix.Number](a *matrix.Dense[T], opts ...Option) (*matrix.Dense[float64], error) {
	cfg := newConfig(opts)

	l, u, err := crout("linalg.Inv", a, cfg)
	if err != nil {
		return nil, err
	}
	n := len(l)

	cfg.logger.Debug("inverting triangular factors",
		log.ComponentKey, "linalg",
		log.OperationKey, log.OperationInv,
		log.RowsKey, n,
		log.ColsKey, n,
	)

	uInv := invUnitUpper(u, n)
	lInv := invLower(l, n)

	// A⁻¹ = U⁻¹·L⁻¹
	out := zeros(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			v := uInv[i][k]
			if v == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i][j] += v * lInv[k][j]
			}
		}
		if err := errors.CheckValues("linalg.Inv", out[i]); err != nil {
			return nil, err
		}
	}

	return matrix.FromRows(out)
}

// invUnitUpper は単位上三角行列 U の逆行列を求める。
// 各行 i について列 j を昇順に確定する:
//
//	V[i][i] = 1
//	V[i][j] = -Σ_{k=i..j-1} V[i][k]·U[k][j]   (j > i)
func invUnitUpper(u [][]float64, n int) [][]float64 {
	v := zeros(n)
	for i := 0; i < n; i++ {
		v[i][i] = 1
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := i; k < j; k++ {
				sum += v[i][k] * u[k][j]
			}
			v[i][j] = -sum
		}
	}
	return v
}

// invLower は下三角行列 L の逆行列を求める。
// 行 i を前進順に解決する。対角ピボットの非ゼロは分解時に検証済み:
//
//	W[i][i] = 1 / L[i][i]
//	W[i][j] = -(Σ_{k=j..i-1} L[i][k]·W[k][j]) / L[i][i]   (i > j)
func invLower(l [][]float64, n int) [][]float64 {
	w := zeros(n)
	for i := 0; i < n; i++ {
		w[i][i] = 1 / l[i][i]
		for j := 0; j < i; j++ {
			sum := 0.0
			for k := j; k < i; k++ {
				sum += l[i][k] * w[k][j]
			}
			w[i][j] = -sum / l[i][i]
		}
	}
	return w
}
