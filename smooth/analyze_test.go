package smooth

import (
	"math"
	"testing"
)

func TestGain(t *testing.T) {
	if got := Gain(0, 1); got != 1 {
		t.Fatalf("DC gain = %v, want 1", got)
	}
	if got := Gain(0, 5); got != 1 {
		t.Fatalf("DC gain after 5 passes = %v, want 1", got)
	}
	if got := Gain(0.5, 1); got > 1e-30 {
		t.Fatalf("Nyquist gain = %v, want ~0", got)
	}
	// 1-2-1 at quarter band: cos²(π/4) = 1/2.
	if got := Gain(0.25, 1); !closeTo(got, 0.5, tolerance) {
		t.Fatalf("quarter-band gain = %v, want 0.5", got)
	}
	if got := Gain(0.25, 2); !closeTo(got, 0.25, tolerance) {
		t.Fatalf("quarter-band gain after 2 passes = %v, want 0.25", got)
	}
}

func TestResponseMatchesClosedForm(t *testing.T) {
	const size = 64
	for _, passes := range []int{1, 2, 4} {
		mag, err := Response(passes, size)
		if err != nil {
			t.Fatalf("Response(%d): %v", passes, err)
		}
		if len(mag) != size/2+1 {
			t.Fatalf("got %d bins, want %d", len(mag), size/2+1)
		}
		for k, m := range mag {
			want := Gain(float64(k)/size, passes)
			if math.Abs(m-want) > 1e-9 {
				t.Fatalf("passes=%d bin %d: fft %v vs exact %v", passes, k, m, want)
			}
		}
	}
}

func TestResponseRejectsBadSize(t *testing.T) {
	if _, err := Response(1, 0); err == nil {
		t.Fatal("size 0 accepted")
	}
	if _, err := Response(1, -4); err == nil {
		t.Fatal("negative size accepted")
	}
}
