package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YuminosukeSato/godense/pkg/errors"
)

func TestAddSub_RoundTrip(t *testing.T) {
	t.Run("int exact", func(t *testing.T) {
		a, _ := FromRows([][]int{{1, -2}, {3, 4}})
		b, _ := FromRows([][]int{{5, 6}, {-7, 8}})

		sum, err := Add(a, b)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		back, err := Sub(sum, b)
		if err != nil {
			t.Fatalf("Sub failed: %v", err)
		}
		if eq, _ := a.Equal(back); !eq {
			t.Errorf("Sub(Add(a, b), b) != a:\n%v", back)
		}
	})

	t.Run("float64 within epsilon", func(t *testing.T) {
		a, _ := FromRows([][]float64{{0.1, 0.2}, {0.3, 0.4}})
		b, _ := FromRows([][]float64{{1.5, -2.5}, {3.25, 0.75}})

		sum, err := Add(a, b)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		back, err := Sub(sum, b)
		if err != nil {
			t.Fatalf("Sub failed: %v", err)
		}
		if eq, _ := a.EqualApprox(back, 1e-12); !eq {
			t.Errorf("Sub(Add(a, b), b) not within epsilon of a:\n%v", back)
		}
	})
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := New[float64](2, 3)
	b, _ := New[float64](3, 2)

	_, err := Add(a, b)
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %T: %v", err, err)
	}

	if _, err := Sub(a, b); err == nil {
		t.Error("Sub with mismatched dimensions should fail")
	}
}

func TestAddSub_DoNotMutateOperands(t *testing.T) {
	a, _ := FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := FromRows([][]int{{10, 20}, {30, 40}})

	if _, err := Add(a, b); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	want := [][]int{{1, 2}, {3, 4}}
	if diff := cmp.Diff(want, a.ToSlice()); diff != "" {
		t.Errorf("Add mutated its operand (-want +got):\n%s", diff)
	}
}

func TestScale(t *testing.T) {
	a, _ := FromRows([][]float64{{1, -2}, {3, 0}})
	out := Scale(a, 2.5)

	want := [][]float64{{2.5, -5}, {7.5, 0}}
	if diff := cmp.Diff(want, out.ToSlice()); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
}

func TestMatMul_Concrete(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := FromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	out, err := MatMul(a, b)
	if err != nil {
		t.Fatalf("MatMul failed: %v", err)
	}
	want := [][]float64{{58, 64}, {139, 154}}
	if diff := cmp.Diff(want, out.ToSlice()); diff != "" {
		t.Errorf("MatMul mismatch (-want +got):\n%s", diff)
	}
}

func TestMatMul_NonConformable(t *testing.T) {
	// 2x3 と 2x2 は非適合
	a, _ := New[float64](2, 3)
	b, _ := New[float64](2, 2)

	_, err := MatMul(a, b)
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %T: %v", err, err)
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("DimensionError = %+v, want Expected=3 Got=2", dimErr)
	}
}

func TestMatMul_Identity(t *testing.T) {
	a, _ := FromRows([][]float64{{2, -1, 0}, {4, 3, 7}, {1, 1, 1}})
	eye, err := Identity[float64](3)
	if err != nil {
		t.Fatalf("Identity failed: %v", err)
	}

	left, err := MatMul(eye, a)
	if err != nil {
		t.Fatalf("MatMul(I, A) failed: %v", err)
	}
	if eq, _ := left.Equal(a); !eq {
		t.Error("MatMul(I, A) != A")
	}

	right, err := MatMul(a, eye)
	if err != nil {
		t.Fatalf("MatMul(A, I) failed: %v", err)
	}
	if eq, _ := right.Equal(a); !eq {
		t.Error("MatMul(A, I) != A")
	}
}

func TestIdentity_Invalid(t *testing.T) {
	if _, err := Identity[float64](0); err == nil {
		t.Error("Identity(0) should fail")
	}
}

func TestFloat64_Widening(t *testing.T) {
	a, _ := FromRows([][]int{{1, 2}, {3, 4}})
	f := Float64(a)

	want := [][]float64{{1, 2}, {3, 4}}
	if diff := cmp.Diff(want, f.ToSlice()); diff != "" {
		t.Errorf("Float64 mismatch (-want +got):\n%s", diff)
	}
}
