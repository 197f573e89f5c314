package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RollingCorrelation computes the Pearson correlation of the two aligned
// series over a trailing window of the given size. The result has one entry
// per input date: nil for the first window-1 positions where the window is
// not yet full, and nil wherever the correlation is undefined because one
// side has zero variance inside the window. Defined values always lie in
// [-1, 1].
func RollingCorrelation(al Aligned, window int) ([]*float64, error) {
	if window < 2 {
		return nil, ErrWindowTooSmall
	}

	out := make([]*float64, al.Len())
	for i := window - 1; i < al.Len(); i++ {
		lo := i - window + 1
		c := stat.Correlation(al.A[lo:i+1], al.B[lo:i+1], nil)
		if math.IsNaN(c) {
			continue
		}
		// Guard against float error pushing the coefficient past +/-1.
		c = math.Max(-1, math.Min(1, c))
		v := c
		out[i] = &v
	}
	return out, nil
}
