package analytics

// NormalizeBase100 rescales both aligned series so that their first common
// value becomes 100, which makes their relative evolutions directly
// comparable on one chart. By construction both outputs equal exactly 100
// at the first common date. A zero first value would put infinities on the
// chart, so it is rejected with ErrDivideByZero instead.
func NormalizeBase100(al Aligned) (action, macro []float64, err error) {
	if al.Len() == 0 {
		return nil, nil, ErrEmptyIntersection
	}
	if al.A[0] == 0 || al.B[0] == 0 {
		return nil, nil, ErrDivideByZero
	}

	action = make([]float64, al.Len())
	macro = make([]float64, al.Len())
	for i := range al.Dates {
		action[i] = al.A[i] / al.A[0] * 100
		macro[i] = al.B[i] / al.B[0] * 100
	}
	return action, macro, nil
}
