package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollingCorrelationWindowTooSmall(t *testing.T) {
	aligned, err := AlignByDate(series(1, 2, 3), series(1, 2, 3))
	require.NoError(t, err)

	_, err = RollingCorrelation(aligned, 1)
	assert.ErrorIs(t, err, ErrWindowTooSmall)

	_, err = RollingCorrelation(aligned, 0)
	assert.ErrorIs(t, err, ErrWindowTooSmall)
}

func TestRollingCorrelationWarmup(t *testing.T) {
	aligned, err := AlignByDate(series(1, 2, 3, 4, 5), series(2, 4, 6, 8, 10))
	require.NoError(t, err)

	values, err := RollingCorrelation(aligned, 3)
	require.NoError(t, err)
	require.Len(t, values, 5)

	// Undefined until the trailing window is full.
	assert.Nil(t, values[0])
	assert.Nil(t, values[1])
	for i := 2; i < 5; i++ {
		require.NotNil(t, values[i])
		assert.InDelta(t, 1.0, *values[i], 1e-9)
	}
}

func TestRollingCorrelationAntiCorrelated(t *testing.T) {
	aligned, err := AlignByDate(series(1, 2, 3, 4), series(4, 3, 2, 1))
	require.NoError(t, err)

	values, err := RollingCorrelation(aligned, 2)
	require.NoError(t, err)

	for i := 1; i < len(values); i++ {
		require.NotNil(t, values[i])
		assert.InDelta(t, -1.0, *values[i], 1e-9)
	}
}

func TestRollingCorrelationBounds(t *testing.T) {
	aligned, err := AlignByDate(
		series(1.2, -0.7, 3.1, 0.4, -2.2, 1.8, 0.3, -0.9),
		series(0.5, 1.4, -1.1, 2.0, 0.1, -0.6, 1.9, 0.8),
	)
	require.NoError(t, err)

	values, err := RollingCorrelation(aligned, 4)
	require.NoError(t, err)

	for _, v := range values {
		if v == nil {
			continue
		}
		assert.GreaterOrEqual(t, *v, -1.0)
		assert.LessOrEqual(t, *v, 1.0)
	}
}

func TestRollingCorrelationZeroVarianceWindow(t *testing.T) {
	// The equity leg is flat inside every window, so the correlation is
	// undefined everywhere, never a spurious +/-1.
	aligned, err := AlignByDate(series(5, 5, 5, 5), series(1, 2, 3, 4))
	require.NoError(t, err)

	values, err := RollingCorrelation(aligned, 2)
	require.NoError(t, err)
	for _, v := range values {
		assert.Nil(t, v)
	}
}
