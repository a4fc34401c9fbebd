package grid

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func mustFromValues(t *testing.T, dims []string, shape []int, values []float64) *Array {
	t.Helper()
	a, err := FromValues(dims, shape, values)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	return a
}

func TestNewValidation(t *testing.T) {
	if _, err := New([]string{"x", "x"}, []int{2, 2}); !errors.Is(err, ErrDuplicateDim) {
		t.Fatalf("duplicate dim: got %v", err)
	}
	if _, err := New([]string{"x"}, []int{2, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("dims/shape mismatch: got %v", err)
	}
	if _, err := New([]string{"x"}, []int{-1}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("negative length: got %v", err)
	}
	if _, err := New([]string{""}, []int{2}); !errors.Is(err, ErrUnknownDim) {
		t.Fatalf("empty name: got %v", err)
	}
	if _, err := FromValues([]string{"x"}, []int{3}, []float64{1, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("short values: got %v", err)
	}
}

func TestAtSet(t *testing.T) {
	a := mustFromValues(t, []string{"y", "x"}, []int{2, 3}, []float64{0, 1, 2, 3, 4, 5})

	got, err := a.At(1, 2)
	if err != nil || got != 5 {
		t.Fatalf("At(1,2) = %v, %v; want 5", got, err)
	}
	if err := a.Set(9, 0, 1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := a.At(0, 1); got != 9 {
		t.Fatalf("after Set got %v want 9", got)
	}

	if _, err := a.At(2, 0); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("out of range: got %v", err)
	}
	if _, err := a.At(0); !errors.Is(err, ErrBadIndex) {
		t.Fatalf("wrong arity: got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := mustFromValues(t, []string{"x"}, []int{2}, []float64{1, 2})
	b := a.Clone()
	if err := b.Set(7, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := a.At(0); got != 1 {
		t.Fatalf("clone mutation leaked into original: %v", got)
	}
}

func TestTranspose(t *testing.T) {
	a := mustFromValues(t, []string{"y", "x"}, []int{2, 3}, []float64{0, 1, 2, 3, 4, 5})

	tr, err := a.Transpose("x", "y")
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	wantDims := []string{"x", "y"}
	for i, d := range tr.Dims() {
		if d != wantDims[i] {
			t.Fatalf("dims = %v, want %v", tr.Dims(), wantDims)
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			orig, _ := a.At(y, x)
			got, _ := tr.At(x, y)
			if got != orig {
				t.Fatalf("tr[%d,%d] = %v, want %v", x, y, got, orig)
			}
		}
	}

	// Round trip restores the exact layout.
	back, err := tr.Transpose("y", "x")
	if err != nil {
		t.Fatalf("Transpose back: %v", err)
	}
	if !back.AllClose(a, 0) {
		t.Fatalf("round trip mismatch: %v vs %v", back.Values(), a.Values())
	}

	if _, err := a.Transpose("x"); !errors.Is(err, ErrDimMismatch) {
		t.Fatalf("short permutation: got %v", err)
	}
	if _, err := a.Transpose("x", "x"); !errors.Is(err, ErrDuplicateDim) {
		t.Fatalf("repeated name: got %v", err)
	}
	if _, err := a.Transpose("x", "z"); !errors.Is(err, ErrUnknownDim) {
		t.Fatalf("unknown name: got %v", err)
	}
}

func TestTranspose3D(t *testing.T) {
	values := make([]float64, 24)
	for i := range values {
		values[i] = float64(i)
	}
	a := mustFromValues(t, []string{"z", "y", "x"}, []int{2, 3, 4}, values)

	tr, err := a.Transpose("x", "z", "y")
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	for z := 0; z < 2; z++ {
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				orig, _ := a.At(z, y, x)
				got, _ := tr.At(x, z, y)
				if got != orig {
					t.Fatalf("tr[%d,%d,%d] = %v, want %v", x, z, y, got, orig)
				}
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := mustFromValues(t, []string{"x"}, []int{3}, []float64{1, -2, 3})

	a.Scale(2)
	want := []float64{2, -4, 6}
	for i, v := range a.Values() {
		if v != want[i] {
			t.Fatalf("Scale: got %v want %v", a.Values(), want)
		}
	}

	b := mustFromValues(t, []string{"x"}, []int{3}, []float64{1, 1, 1})
	if err := a.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	want = []float64{3, -3, 7}
	for i, v := range a.Values() {
		if v != want[i] {
			t.Fatalf("Add: got %v want %v", a.Values(), want)
		}
	}

	if got := a.MaxAbs(); got != 7 {
		t.Fatalf("MaxAbs = %v, want 7", got)
	}

	c := mustFromValues(t, []string{"y"}, []int{3}, []float64{0, 0, 0})
	if err := a.Add(c); !errors.Is(err, ErrDimMismatch) {
		t.Fatalf("mismatched Add: got %v", err)
	}
}

func TestAllClose(t *testing.T) {
	a := mustFromValues(t, []string{"x"}, []int{3}, []float64{1, math.NaN(), 3})
	b := mustFromValues(t, []string{"x"}, []int{3}, []float64{1 + 1e-13, math.NaN(), 3})
	if !a.AllClose(b, 1e-12) {
		t.Fatal("arrays should compare close (NaN == NaN)")
	}
	c := mustFromValues(t, []string{"x"}, []int{3}, []float64{1, 2, 3})
	if a.AllClose(c, 1e-12) {
		t.Fatal("NaN should not compare close to a number")
	}
}

func TestAllCloseMixedNaN(t *testing.T) {
	n := mustFromValues(t, []string{"x"}, []int{1}, []float64{math.NaN()})
	v := mustFromValues(t, []string{"x"}, []int{1}, []float64{42})
	if n.AllClose(v, 1e-12) {
		t.Fatal("NaN vs number reported close")
	}
	if v.AllClose(n, 1e-12) {
		t.Fatal("number vs NaN reported close")
	}
}

func TestScalar(t *testing.T) {
	s := Scalar(4.5)
	if s.NDim() != 0 || s.Size() != 1 {
		t.Fatalf("scalar layout: ndim=%d size=%d", s.NDim(), s.Size())
	}
	got, err := s.At()
	if err != nil || got != 4.5 {
		t.Fatalf("At() = %v, %v; want 4.5", got, err)
	}
}
