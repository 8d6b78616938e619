// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 行列演算の前提条件違反（次元不一致・範囲外アクセス・特異行列など）を
// 構造化されたエラー情報として呼び出し側へ伝搬します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("godense-Warning: %v\n", w)
	}
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// 整数行列の暗黙的な浮動小数点変換などの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn は警告を発生させます。エラーと異なり処理は継続されます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// DataConversionWarning は行列の要素型が暗黙的に変換された場合に発生する警告です。
// 整数行列に対して LU 分解・行列式・逆行列を呼び出すと float64 へ拡張されます。
type DataConversionWarning struct {
	FromType string
	ToType   string
	Reason   string
}

func (w *DataConversionWarning) Error() string {
	return fmt.Sprintf("data converted from %s to %s. Reason: %s", w.FromType, w.ToType, w.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DataConversionWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("from_type", w.FromType).
		Str("to_type", w.ToType).
		Str("reason", w.Reason).
		Str("type", "DataConversionWarning")
}

// NewDataConversionWarning は新しいDataConversionWarningを作成します。
func NewDataConversionWarning(from, to, reason string) *DataConversionWarning {
	return &DataConversionWarning{FromType: from, ToType: to, Reason: reason}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は行列の次元が演算の前提条件を満たさない場合のエラーです。
// 要素ごとの加減算・乗算の非適合、正方行列を要求する分解への非正方入力、
// 一括構築時の行長不一致などで発生します。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("godense: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// IndexError は範囲外の要素アクセスを表すエラーです。
// At/Set は添字を必ず検証し、範囲外アクセスにはこのエラーを返します。
type IndexError struct {
	Op   string
	Row  int
	Col  int
	Rows int
	Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("godense: %s: index (%d, %d) out of bounds for %dx%d matrix", e.Op, e.Row, e.Col, e.Rows, e.Cols)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *IndexError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("row", e.Row).
		Int("col", e.Col).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Str("type", "IndexError")
}

// NewIndexError は新しいIndexErrorを作成し、スタックトレースを付与します。
func NewIndexError(op string, row, col, rows, cols int) error {
	err := &IndexError{Op: op, Row: row, Col: col, Rows: rows, Cols: cols}
	return errors.WithStack(err)
}

// SingularMatrixError はLU分解がゼロ（または許容誤差内でゼロ）のピボットに
// 遭遇した場合のエラーです。ピボット選択を行わないCrout法では、正則な行列でも
// 先頭小行列式がゼロになる配置で発生します。
type SingularMatrixError struct {
	Op    string
	Pivot int     // ゼロと判定されたピボットの添字 k
	Value float64 // L[k][k] の実際の値
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("godense: %s: singular matrix: pivot %d is zero or below tolerance (%g)", e.Op, e.Pivot, e.Value)
}

func (e *SingularMatrixError) Unwrap() error {
	return ErrSingularMatrix
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *SingularMatrixError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("pivot", e.Pivot).
		Float64("value", e.Value).
		Str("type", "SingularMatrixError")
}

// NewSingularMatrixError は新しいSingularMatrixErrorを作成し、スタックトレースを付与します。
func NewSingularMatrixError(op string, pivot int, value float64) error {
	err := &SingularMatrixError{Op: op, Pivot: pivot, Value: value}
	return errors.WithStack(err)
}

// AllocationError はバッキングストアの確保に失敗した場合のエラーです。
type AllocationError struct {
	Op    string
	Rows  int
	Cols  int
	Cause interface{} // recover() で捕捉した値
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("godense: %s: failed to allocate %dx%d backing store: %v", e.Op, e.Rows, e.Cols, e.Cause)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *AllocationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("rows", e.Rows).
		Int("cols", e.Cols).
		Str("type", "AllocationError")
}

// NewAllocationError は新しいAllocationErrorを作成し、スタックトレースを付与します。
func NewAllocationError(op string, rows, cols int, cause interface{}) error {
	err := &AllocationError{Op: op, Rows: rows, Cols: cols, Cause: cause}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、ゼロ以下の次元で行列を構築しようとした場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("godense: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrSingularMatrix は特異行列の場合のエラーです。
	// SingularMatrixError は常にこのエラーへ Unwrap されるため、
	// errors.Is(err, ErrSingularMatrix) で判定できます。
	ErrSingularMatrix = New("singular matrix")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
