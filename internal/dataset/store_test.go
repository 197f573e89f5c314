package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macrolens/pkg/contracts/domain"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

func ptr(v float64) *float64 { return &v }

func testStore() *Store {
	equities := []domain.PriceObservation{
		// Deliberately out of order to exercise the sort.
		{Date: day(3), Ticker: "TTE.PA", Close: 50.1, DailyReturnPct: ptr(0.2), Volatility30d: ptr(1.1)},
		{Date: day(1), Ticker: "TTE.PA", Close: 49.2},
		{Date: day(2), Ticker: "TTE.PA", Close: 50.0, DailyReturnPct: ptr(1.6)},
		{Date: day(1), Ticker: "BNP.PA", Close: 53.1},
		{Date: day(2), Ticker: "BNP.PA", Close: 52.6, DailyReturnPct: ptr(-0.9), Volatility30d: ptr(2.0)},
	}
	macros := []domain.MacroObservation{
		{Date: day(2), Ticker: "BZ=F", Close: 68.6},
		{Date: day(1), Ticker: "BZ=F", Close: 66.3},
	}
	return New(equities, macros)
}

func TestStoreRowCounts(t *testing.T) {
	s := testStore()
	assert.Equal(t, 5, s.EquityRowCount())
	assert.Equal(t, 2, s.MacroRowCount())
}

func TestStoreEquityTickers(t *testing.T) {
	s := testStore()
	assert.Equal(t, []string{"BNP.PA", "TTE.PA"}, s.EquityTickers())
}

func TestStoreEquityCloseSeriesSorted(t *testing.T) {
	s := testStore()
	series := s.EquityCloseSeries("TTE.PA")
	require.Len(t, series, 3)
	assert.Equal(t, day(1), series[0].Date)
	assert.Equal(t, day(2), series[1].Date)
	assert.Equal(t, day(3), series[2].Date)
	assert.Equal(t, 49.2, series[0].Value)
}

func TestStoreEquityCloseSeriesUnknownTicker(t *testing.T) {
	s := testStore()
	assert.Empty(t, s.EquityCloseSeries("NOPE.PA"))
}

func TestStoreEquityReturnSeriesSkipsMissing(t *testing.T) {
	s := testStore()
	series := s.EquityReturnSeries("TTE.PA")
	require.Len(t, series, 2)
	assert.Equal(t, day(2), series[0].Date)
	assert.InDelta(t, 1.6, series[0].Value, 1e-9)
}

func TestStoreMacroCloseSeries(t *testing.T) {
	s := testStore()
	series := s.MacroCloseSeries("BZ=F")
	require.Len(t, series, 2)
	assert.Equal(t, day(1), series[0].Date)
	assert.Equal(t, 66.3, series[0].Value)
}

func TestStoreVolatilitySeries(t *testing.T) {
	s := testStore()

	series := s.VolatilitySeries("TTE.PA", time.Time{}, time.Time{})
	require.Len(t, series, 1)
	assert.Equal(t, day(3), series[0].Date)
	assert.InDelta(t, 1.1, series[0].Value, 1e-9)

	// Range bound excludes the only row carrying a volatility value.
	assert.Empty(t, s.VolatilitySeries("TTE.PA", time.Time{}, day(2)))
}

func TestStoreEquityRowsRange(t *testing.T) {
	s := testStore()

	all := s.EquityRows(time.Time{}, time.Time{})
	assert.Len(t, all, 5)

	dayTwoOnly := s.EquityRows(day(2), day(2))
	require.Len(t, dayTwoOnly, 2)
	for _, row := range dayTwoOnly {
		assert.Equal(t, day(2), row.Date)
	}

	fromOnly := s.EquityRows(day(3), time.Time{})
	require.Len(t, fromOnly, 1)
	assert.Equal(t, "TTE.PA", fromOnly[0].Ticker)
}
