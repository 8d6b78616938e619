// Package linalg は密行列に対する直接法の線形代数カーネルを提供します。
//
// 提供するのはピボット選択なしの Crout LU 分解と、それに基づく行列式・
// 逆行列です。要素型が整数の行列も分解時に float64 へ明示的に拡張されます。
//
// ピボット選択を行わないため、正則であっても先頭小行列式がゼロになる行列
// （例: [[0,1],[1,0]]）では SingularMatrixError になります。また丸め誤差が
// 蓄積するため、堅牢な解法が必要な場合は逆行列を実体化せず gonum の
// ソルバで連立一次方程式を直接解くことを推奨します。
package linalg

import (
	"fmt"
	"math"
	"reflect"

	"github.com/YuminosukeSato/godense/matrix"
	"github.com/YuminosukeSato/godense/pkg/errors"
	"github.com/YuminosukeSato/godense/pkg/log"
)

// LU は正方行列 A を Crout 法で下三角行列 L と単位上三角行列 U に分解する。
// L·U = A（浮動小数点の丸めの範囲内）、U の対角成分は常に 1。
//
// 非正方行列には DimensionError、ゼロ（または許容誤差内でゼロ）のピボットに
// 遭遇した場合は SingularMatrixError を返す。許容誤差は WithPivotTolerance で
// 変更できる。
func LU[T matrix.Number](a *matrix.Dense[T], opts ...Option) (l, u *matrix.Dense[float64], err error) {
	cfg := newConfig(opts)

	ls, us, err := crout("linalg.LU", a, cfg)
	if err != nil {
		return nil, nil, err
	}

	l, err = matrix.FromRows(ls)
	if err != nil {
		return nil, nil, err
	}
	u, err = matrix.FromRows(us)
	if err != nil {
		return nil, nil, err
	}
	return l, u, nil
}

// Det は正方行列 A の行列式を返す。
// LU 分解を経由し、L と U それぞれの対角積の積 ΠL[i][i]·ΠU[i][i] を計算する
// （U の対角は構成上常に 1 だが、単位対角の規約が変わっても正しさを保つため
// 両方の積を取る）。
//
// 分解が特異性を検出した場合は行列式 0 が数学的に正しい値であるため、
// エラーではなく 0 を返す。非正方行列には DimensionError を返す。
func Det[T matrix.Number](a *matrix.Dense[T], opts ...Option) (float64, error) {
	cfg := newConfig(opts)

	ls, us, err := crout("linalg.Det", a, cfg)
	if err != nil {
		if errors.Is(err, errors.ErrSingularMatrix) {
			return 0, nil
		}
		return 0, err
	}

	n := len(ls)
	detL, detU := 1.0, 1.0
	for i := 0; i < n; i++ {
		detL *= ls[i][i]
		detU *= us[i][i]
	}
	det := detL * detU

	if err := errors.CheckScalar("linalg.Det", det); err != nil {
		return 0, err
	}
	return det, nil
}

// crout は A を float64 へ拡張した上で Crout 法の漸化式を実行する共通部。
// 列 k ごとに L の第 k 列、続いて U の第 k 行を確定する:
//
//	U[k][k] = 1
//	L[j][k] = A[j][k] - Σ_{i<k} L[j][i]·U[i][k]   (j = k..n-1)
//	U[k][j] = (A[k][j] - Σ_{i<k} L[k][i]·U[i][j]) / L[k][k]   (j = k+1..n-1)
//
// 除算の前にピボット L[k][k] を検証し、Inf/NaN を生成する前に失敗する。
func crout[T matrix.Number](op string, m *matrix.Dense[T], cfg config) (l, u [][]float64, err error) {
	if m == nil {
		return nil, nil, errors.NewValueError(op, "nil matrix")
	}
	rows, cols := m.Dims()
	if rows != cols {
		return nil, nil, errors.NewDimensionError(op, rows, cols, 1)
	}

	a := widen(op, m, cfg)
	n := rows

	cfg.logger.Debug("decomposition started",
		log.ComponentKey, "linalg",
		log.OperationKey, log.OperationLU,
		log.RowsKey, n,
		log.ColsKey, n,
		log.ToleranceKey, cfg.pivotTol,
	)

	l = zeros(n)
	u = zeros(n)
	for k := 0; k < n; k++ {
		u[k][k] = 1

		for j := k; j < n; j++ {
			sum := 0.0
			for i := 0; i < k; i++ {
				sum += l[j][i] * u[i][k]
			}
			l[j][k] = a[j][k] - sum
		}

		pivot := l[k][k]
		if math.Abs(pivot) <= cfg.pivotTol {
			cfg.logger.Warn("zero pivot encountered",
				log.ComponentKey, "linalg",
				log.OperationKey, log.OperationLU,
				log.PivotIndexKey, k,
				log.PivotValueKey, pivot,
				log.ToleranceKey, cfg.pivotTol,
			)
			return nil, nil, errors.NewSingularMatrixError(op, k, pivot)
		}

		for j := k + 1; j < n; j++ {
			sum := 0.0
			for i := 0; i < k; i++ {
				sum += l[k][i] * u[i][j]
			}
			u[k][j] = (a[k][j] - sum) / pivot
		}
	}
	return l, u, nil
}

// widen は任意の要素型の行列を float64 の行スライスへコピーする。
// 整数行列の場合は DataConversionWarning を発生させる。
func widen[T matrix.Number](op string, m *matrix.Dense[T], cfg config) [][]float64 {
	var zero T
	dtype := fmt.Sprintf("%T", zero)

	if k := reflect.TypeOf(zero).Kind(); k != reflect.Float64 && k != reflect.Float32 {
		errors.Warn(errors.NewDataConversionWarning(dtype, "float64",
			op+" operates in floating point"))
	}
	if dtype != "float64" {
		cfg.logger.Debug("widening matrix to float64",
			log.ComponentKey, "linalg",
			log.DataTypeKey, dtype,
		)
	}

	return matrix.Float64(m).ToSlice()
}

func zeros(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	return out
}
