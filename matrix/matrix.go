// Package matrix は行優先の密行列コンテナを提供します。
//
// Dense[T] は整数型・浮動小数点型のスカラーを要素とする汎用の2次元配列です。
// すべての演算は新しいインスタンスを返し、オペランドを変更しません
// （変更操作は Set と Fill のみ）。返された行列は他のインスタンスと
// バッキングストアを共有しません。
package matrix

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/YuminosukeSato/godense/pkg/errors"
)

// Number は Dense の要素として使用できるスカラー型の制約
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dense は行優先のバッキングスライスを持つ rows×cols の密行列
type Dense[T Number] struct {
	rows int
	cols int
	data []T // 長さは常に rows*cols
}

// New はゼロ値で初期化された rows×cols の行列を作成する。
// 次元がゼロ以下の場合は ValueError、バッキングストアの確保に失敗した
// 場合は AllocationError を返す。
func New[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 {
		return nil, errors.NewValueError("matrix.New", fmt.Sprintf("rows must be positive, got %d", rows))
	}
	if cols <= 0 {
		return nil, errors.NewValueError("matrix.New", fmt.Sprintf("cols must be positive, got %d", cols))
	}
	if rows > math.MaxInt/cols {
		return nil, errors.NewAllocationError("matrix.New", rows, cols, "rows*cols overflows int")
	}

	// make は確保失敗時に panic するため、エラー値へ変換して伝搬する
	var data []T
	if allocErr := errors.SafeExecute("matrix.New", func() error {
		data = make([]T, rows*cols)
		return nil
	}); allocErr != nil {
		return nil, errors.NewAllocationError("matrix.New", rows, cols, allocErr)
	}

	return &Dense[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows は等しい長さの行のシーケンスから行列を一括構築する。
// 入力が空の場合は ErrEmptyData、行の長さが不揃いの場合は DimensionError を返す。
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "matrix.FromRows")
	}

	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.NewDimensionError(fmt.Sprintf("matrix.FromRows (row %d)", i), cols, len(row), 1)
		}
	}

	m, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Identity は対角成分が1、それ以外が0の n×n 単位行列を作成する
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows は行数を返す
func (m *Dense[T]) Rows() int { return m.rows }

// Cols は列数を返す
func (m *Dense[T]) Cols() int { return m.cols }

// Dims は (行数, 列数) を返す
func (m *Dense[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// At は要素 (i, j) を返す。範囲外の添字には IndexError を返す。
func (m *Dense[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, errors.NewIndexError("Dense.At", i, j, m.rows, m.cols)
	}
	return m.data[i*m.cols+j], nil
}

// Set は要素 (i, j) に v を設定する。範囲外の添字には IndexError を返す。
func (m *Dense[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return errors.NewIndexError("Dense.Set", i, j, m.rows, m.cols)
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Fill はすべての要素を v に設定する
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone はバッキングストアを共有しない深いコピーを返す
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal は全要素の厳密な一致を判定する。次元が異なる場合は DimensionError を返す。
// 浮動小数点行列では分解後の結果に対して脆弱なため、許容誤差付きの比較には
// EqualApprox を使用すること。
func (m *Dense[T]) Equal(other *Dense[T]) (bool, error) {
	if err := m.sameShape("Dense.Equal", other); err != nil {
		return false, err
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false, nil
		}
	}
	return true, nil
}

// EqualApprox は各要素の差の絶対値が tol 以下であるかを判定する。
// 次元が異なる場合は DimensionError を返す。
func (m *Dense[T]) EqualApprox(other *Dense[T], tol float64) (bool, error) {
	if err := m.sameShape("Dense.EqualApprox", other); err != nil {
		return false, err
	}
	for i, v := range m.data {
		if math.Abs(float64(v)-float64(other.data[i])) > tol {
			return false, nil
		}
	}
	return true, nil
}

// Transpose は out[i][j] = in[j][i] となる新しい cols×rows 行列を返す
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// ToSlice は行列の内容を行ごとのスライスとしてコピーして返す。
// 返されたスライスは行列とストレージを共有しない。
func (m *Dense[T]) ToSlice() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}
	return out
}

// String は行優先・空白区切り・1行1ロウの診断用ダンプを返す。
// 安定したシリアライズ形式ではない。
func (m *Dense[T]) String() string {
	var b strings.Builder
	m.write(&b)
	return b.String()
}

// Fprint は String と同じ診断用ダンプを w へ書き出す
func (m *Dense[T]) Fprint(w io.Writer) error {
	var b strings.Builder
	m.write(&b)
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "Dense.Fprint")
}

func (m *Dense[T]) write(b *strings.Builder) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%v", m.data[i*m.cols+j])
		}
		b.WriteByte('\n')
	}
}

// sameShape は2つの行列の次元一致を検証する
func (m *Dense[T]) sameShape(op string, other *Dense[T]) error {
	if other == nil {
		return errors.NewValueError(op, "nil matrix")
	}
	if m.rows != other.rows {
		return errors.NewDimensionError(op, m.rows, other.rows, 0)
	}
	if m.cols != other.cols {
		return errors.NewDimensionError(op, m.cols, other.cols, 1)
	}
	return nil
}
