package matrix

import (
	"github.com/YuminosukeSato/godense/pkg/errors"
)

// Add は要素ごとの和 a + b を新しい行列として返す。
// 次元が一致しない場合は DimensionError を返す。
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, errors.NewValueError("matrix.Add", "nil matrix")
	}
	if err := a.sameShape("matrix.Add", b); err != nil {
		return nil, err
	}

	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}
	return out, nil
}

// Sub は要素ごとの差 a - b を新しい行列として返す。
// 次元が一致しない場合は DimensionError を返す。
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, errors.NewValueError("matrix.Sub", "nil matrix")
	}
	if err := a.sameShape("matrix.Sub", b); err != nil {
		return nil, err
	}

	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}
	return out, nil
}

// Scale はすべての要素を k 倍した新しい行列を返す。この演算は失敗しない。
func Scale[T Number](a *Dense[T], k T) *Dense[T] {
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= k
	}
	return out
}

// MatMul は行列積 a·b を新しい a.rows×b.cols 行列として返す。
// a.cols != b.rows の場合は DimensionError を返す。
// 計算量は O(a.rows · a.cols · b.cols) の素朴な3重ループ。
func MatMul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, errors.NewValueError("matrix.MatMul", "nil matrix")
	}
	if a.cols != b.rows {
		return nil, errors.NewDimensionError("matrix.MatMul", a.cols, b.rows, 0)
	}

	out, err := New[T](a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			for j := 0; j < b.cols; j++ {
				out.data[i*out.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out, nil
}

// Float64 は任意の要素型の行列を float64 行列へ変換（拡張）する。
// LU 分解・行列式・逆行列は常に浮動小数点で計算されるため、
// 整数行列はこの変換を経由する。
func Float64[T Number](m *Dense[T]) *Dense[float64] {
	out := &Dense[float64]{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = float64(v)
	}
	return out
}
