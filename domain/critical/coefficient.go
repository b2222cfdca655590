package critical

import (
	"math"

	"critval/internal/errors"
)

// Coefficient computes critical regression coefficients element-wise from
// their standard errors: bc[i] = q * seb[i], with q the Student-t quantile
// at df (Options.Test = TestT, the default) or the standard Normal quantile
// (TestZ). Degrees of freedom come from the input directly or as n - p - 1;
// they are resolved and validated for both methods even though the Normal
// quantile does not consume them.
func Coefficient(in CoefficientInput, opts Options) (*CoefficientResult, error) {
	opts = opts.withDefaults()
	alpha, err := TailProbability(opts.ConfLevel, opts.Hypothesis)
	if err != nil {
		return nil, err
	}

	if len(in.SEB) == 0 {
		return nil, errors.InvalidArgument("at least one coefficient standard error is required")
	}

	var df float64
	switch {
	case opts.DF != nil:
		df = *opts.DF
	case in.DF != nil:
		df = *in.DF
	case in.N != nil && in.P != nil:
		df = *in.N - *in.P - 1
	default:
		return nil, errors.InvalidArgument("either df or both n and p are required")
	}
	if df <= 0 {
		return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
	}

	var q float64
	switch opts.Test {
	case TestT:
		q = math.Abs(dist.TQuantile(alpha, df))
	case TestZ:
		q = math.Abs(dist.NormalQuantile(alpha))
	default:
		return nil, errors.InvalidArgumentf("test must be %q or %q, got %q", TestT, TestZ, opts.Test)
	}

	bc := make([]float64, len(in.SEB))
	for i, se := range in.SEB {
		bc[i] = q * se
	}

	return &CoefficientResult{Bc: bc, Test: opts.Test}, nil
}
