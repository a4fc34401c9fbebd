package smooth

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-grid/grid"
	"github.com/cwbudde/algo-vecmath"
)

// Gain returns the closed-form magnitude response of the 1-2-1 stencil
// applied passes times, at normalised frequency freq in cycles per
// sample. The single-pass response is cos²(π·freq): unity at DC,
// zero at Nyquist (freq = 0.5).
func Gain(freq float64, passes int) float64 {
	c := math.Cos(math.Pi * freq)
	return math.Pow(c*c, float64(passes))
}

// Response computes the stencil's magnitude response numerically: a
// unit impulse on a periodic axis of the given size is smoothed passes
// times and transformed with an FFT. It returns the non-negative
// frequency bins [0 .. size/2], so bin k corresponds to normalised
// frequency k/size.
//
// size must be a power of two supported by the FFT backend.
func Response(passes, size int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("smooth: response size must be > 0: %d", size)
	}

	impulse, err := grid.New([]string{"x"}, []int{size})
	if err != nil {
		return nil, err
	}
	if err := impulse.Set(1, 0); err != nil {
		return nil, err
	}

	smoothed, err := Smooth121(impulse, []string{"x"}, WithPasses(passes), WithPeriodic("x"))
	if err != nil {
		return nil, err
	}

	in := make([]complex128, size)
	for i, v := range smoothed.Data() {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("smooth: response fft: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("smooth: response fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}
