// Package analytics implements the stateless computations behind the five
// dashboard charts: date alignment of two series, base-100 normalization,
// rolling Pearson correlation, risk/return aggregation and single-variable
// OLS regression. Every function is a pure request/response transform over
// its inputs; the only failure modes are the data-shape errors in errors.go.
package analytics

import (
	"time"

	"macrolens/pkg/contracts/domain"
)

// Aligned holds two series restricted to their common dates, in
// chronological order. A and B always have the same length as Dates.
type Aligned struct {
	Dates []time.Time
	A     []float64
	B     []float64
}

// Len returns the number of common dates.
func (al Aligned) Len() int { return len(al.Dates) }

// AlignByDate restricts two date-indexed series to the intersection of
// their dates, preserving the chronological order of a. Both inputs must be
// sorted by date, which the dataset store guarantees. Returns
// ErrEmptyIntersection when the series share no date: an empty join is a
// reporting failure, not a valid chart.
func AlignByDate(a, b []domain.SeriesPoint) (Aligned, error) {
	bByDate := make(map[time.Time]float64, len(b))
	for _, p := range b {
		bByDate[p.Date] = p.Value
	}

	al := Aligned{}
	for _, p := range a {
		bv, ok := bByDate[p.Date]
		if !ok {
			continue
		}
		al.Dates = append(al.Dates, p.Date)
		al.A = append(al.A, p.Value)
		al.B = append(al.B, bv)
	}

	if al.Len() == 0 {
		return Aligned{}, ErrEmptyIntersection
	}
	return al, nil
}

// PercentChange converts a close-price series into period-over-period
// percentage returns. The first point has no predecessor and is dropped;
// points following a zero close are dropped as well since their return is
// undefined.
func PercentChange(closes []domain.SeriesPoint) []domain.SeriesPoint {
	if len(closes) < 2 {
		return nil
	}

	returns := make([]domain.SeriesPoint, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1].Value
		if prev == 0 {
			continue
		}
		returns = append(returns, domain.SeriesPoint{
			Date:  closes[i].Date,
			Value: (closes[i].Value - prev) / prev * 100,
		})
	}
	return returns
}
