package critical

import (
	"math"
)

// CorrectionFactor computes the exact small-sample bias-correction factor J
// for standardized mean differences (Hedges' correction):
//
//	J = Gamma(df/2) / (sqrt(df/2) * Gamma((df-1)/2))
//
// evaluated in log space to stay stable for large df. J converges to 1 as
// df grows; multiplying Cohen's d by J yields Hedges' g.
func CorrectionFactor(df float64) float64 {
	if df <= 1 {
		return math.NaN()
	}

	lg1, _ := math.Lgamma(df / 2)
	lg2, _ := math.Lgamma((df - 1) / 2)
	return math.Exp(lg1 - math.Log(math.Sqrt(df/2)) - lg2)
}
