package errors

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		expected int
		got      int
		axis     int
		wantMsg  string
	}{
		{
			name:     "rows axis",
			op:       "matrix.Add",
			expected: 3,
			got:      2,
			axis:     0,
			wantMsg:  "godense: matrix.Add: dimension mismatch on axis 0 (rows). Expected 3, got 2",
		},
		{
			name:     "columns axis",
			op:       "matrix.MatMul",
			expected: 4,
			got:      5,
			axis:     1,
			wantMsg:  "godense: matrix.MatMul: dimension mismatch on axis 1 (columns). Expected 4, got 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError(tt.op, tt.expected, tt.got, tt.axis)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			// DimensionError型にキャスト可能か確認
			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Fatal("Error should be castable to *DimensionError")
			}
			if dimErr.Expected != tt.expected || dimErr.Got != tt.got {
				t.Errorf("fields = %+v, want Expected=%d Got=%d", dimErr, tt.expected, tt.got)
			}
		})
	}
}

func TestNewIndexError(t *testing.T) {
	err := NewIndexError("Dense.At", 5, 1, 3, 3)

	want := "godense: Dense.At: index (5, 1) out of bounds for 3x3 matrix"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var idxErr *IndexError
	if !As(err, &idxErr) {
		t.Fatal("Error should be castable to *IndexError")
	}
	if idxErr.Row != 5 || idxErr.Col != 1 {
		t.Errorf("fields = %+v, want Row=5 Col=1", idxErr)
	}
}

func TestNewSingularMatrixError(t *testing.T) {
	err := NewSingularMatrixError("linalg.LU", 2, 0)

	want := "godense: linalg.LU: singular matrix: pivot 2 is zero or below tolerance (0)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ErrSingularMatrix センチネルへ Unwrap されることの確認
	if !Is(err, ErrSingularMatrix) {
		t.Error("SingularMatrixError should unwrap to ErrSingularMatrix")
	}

	var singErr *SingularMatrixError
	if !As(err, &singErr) {
		t.Fatal("Error should be castable to *SingularMatrixError")
	}
	if singErr.Pivot != 2 {
		t.Errorf("Pivot = %d, want 2", singErr.Pivot)
	}
}

func TestNewAllocationError(t *testing.T) {
	err := NewAllocationError("matrix.New", 1000000, 1000000, "out of memory")

	if !strings.Contains(err.Error(), "failed to allocate 1000000x1000000 backing store") {
		t.Errorf("unexpected message: %v", err.Error())
	}

	var allocErr *AllocationError
	if !As(err, &allocErr) {
		t.Fatal("Error should be castable to *AllocationError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("matrix.New", "rows must be positive, got -1")

	want := "godense: matrix.New: rows must be positive, got -1"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWarningHandler(t *testing.T) {
	// 警告ハンドラの差し替えと捕捉の確認
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	warning := NewDataConversionWarning("int", "float64", "LU decomposition operates in floating point")
	Warn(warning)

	if len(captured) != 1 {
		t.Fatalf("captured %d warnings, want 1", len(captured))
	}
	wantMsg := "data converted from int to float64. Reason: LU decomposition operates in floating point"
	if captured[0].Error() != wantMsg {
		t.Errorf("warning = %v, want %v", captured[0], wantMsg)
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewDimensionError("linalg.Det", 3, 2, 1)
	wrapped := Wrap(base, "while computing determinant")

	var dimErr *DimensionError
	if !As(wrapped, &dimErr) {
		t.Error("wrapping should preserve the underlying error type")
	}
}

func TestCheckScalar(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{name: "finite", value: 1.5, wantErr: false},
		{name: "zero", value: 0, wantErr: false},
		{name: "NaN", value: math.NaN(), wantErr: true},
		{name: "positive Inf", value: math.Inf(1), wantErr: true},
		{name: "negative Inf", value: math.Inf(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckScalar("linalg.Det", tt.value)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckValues(t *testing.T) {
	if err := CheckValues("linalg.Inv", []float64{1, 2, 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := CheckValues("linalg.Inv", []float64{1, math.Inf(1), 3})
	if err == nil {
		t.Fatal("expected error for Inf value")
	}
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Errorf("expected NumericalInstabilityError, got %T", err)
	}
	if !strings.Contains(err.Error(), "linalg.Inv") {
		t.Errorf("message should name the operation: %v", err)
	}
}
