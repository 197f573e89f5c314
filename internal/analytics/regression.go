package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"macrolens/pkg/contracts/domain"
)

// regressionLinePoints is the number of evenly spaced points generated for
// rendering the fitted line across the observed x-range.
const regressionLinePoints = 100

// FitRegression fits actionReturn = alpha + beta * macroReturn by ordinary
// least squares over the aligned return pairs and reports the Pearson
// correlation and its square as R-squared. Requires at least two
// observations (ErrInsufficientData) and a non-degenerate x-range
// (ErrZeroVariance): a flat independent variable leaves the slope
// undefined, which must be reported rather than produce a division by zero.
func FitRegression(al Aligned) (domain.RegressionFit, error) {
	if al.Len() < 2 {
		return domain.RegressionFit{}, ErrInsufficientData
	}

	xMin, xMax := al.B[0], al.B[0]
	for _, x := range al.B {
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
	}
	if xMin == xMax {
		return domain.RegressionFit{}, ErrZeroVariance
	}

	alpha, beta := stat.LinearRegression(al.B, al.A, nil, false)
	corr := stat.Correlation(al.B, al.A, nil)
	if math.IsNaN(corr) {
		// Zero variance on the dependent side: the fit is a perfect
		// horizontal line, the correlation is undefined.
		corr = 0
	}

	line := make([]domain.XYPoint, regressionLinePoints)
	step := (xMax - xMin) / float64(regressionLinePoints-1)
	for i := range line {
		x := xMin + float64(i)*step
		line[i] = domain.XYPoint{X: x, Y: alpha + beta*x}
	}

	return domain.RegressionFit{
		Alpha:        alpha,
		Beta:         beta,
		Correlation:  corr,
		RSquared:     corr * corr,
		Observations: al.Len(),
		Line:         line,
	}, nil
}
