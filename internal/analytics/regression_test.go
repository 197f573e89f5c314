package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRegressionExactLine(t *testing.T) {
	// y = 2 + 3x without noise: the fit must recover the coefficients and
	// report a perfect correlation.
	aligned, err := AlignByDate(
		series(5, 8, 11, 14, 17), // y
		series(1, 2, 3, 4, 5),    // x
	)
	require.NoError(t, err)

	fit, err := FitRegression(aligned)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, fit.Alpha, 1e-9)
	assert.InDelta(t, 3.0, fit.Beta, 1e-9)
	assert.InDelta(t, 1.0, fit.Correlation, 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	assert.Equal(t, 5, fit.Observations)
}

func TestFitRegressionLineSpansObservedRange(t *testing.T) {
	aligned, err := AlignByDate(series(5, 8, 11, 14), series(1, 2, 3, 4))
	require.NoError(t, err)

	fit, err := FitRegression(aligned)
	require.NoError(t, err)
	require.Len(t, fit.Line, 100)

	assert.InDelta(t, 1.0, fit.Line[0].X, 1e-9)
	assert.InDelta(t, 4.0, fit.Line[len(fit.Line)-1].X, 1e-9)
	for _, p := range fit.Line {
		assert.InDelta(t, fit.Alpha+fit.Beta*p.X, p.Y, 1e-9)
	}
}

func TestFitRegressionNegativeSlope(t *testing.T) {
	aligned, err := AlignByDate(series(10, 8, 6, 4), series(1, 2, 3, 4))
	require.NoError(t, err)

	fit, err := FitRegression(aligned)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, fit.Beta, 1e-9)
	assert.InDelta(t, -1.0, fit.Correlation, 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
}

func TestFitRegressionInsufficientData(t *testing.T) {
	aligned, err := AlignByDate(series(1), series(2))
	require.NoError(t, err)

	_, err = FitRegression(aligned)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestFitRegressionZeroVariance(t *testing.T) {
	aligned, err := AlignByDate(series(1, 2, 3), series(7, 7, 7))
	require.NoError(t, err)

	_, err = FitRegression(aligned)
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestFitRegressionFlatDependent(t *testing.T) {
	// Flat y over varying x: slope zero, correlation reported as zero
	// rather than NaN.
	aligned, err := AlignByDate(series(5, 5, 5), series(1, 2, 3))
	require.NoError(t, err)

	fit, err := FitRegression(aligned)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, fit.Beta, 1e-9)
	assert.Equal(t, 0.0, fit.Correlation)
	assert.Equal(t, 0.0, fit.RSquared)
}
