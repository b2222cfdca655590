package critical

import (
	"math"

	"critval/internal/errors"
)

// Correlation computes the critical correlation coefficient via either the
// raw-correlation t-based method (Options.Test = TestT, the default) or the
// Fisher-z method (TestZ). The two methods are selected explicitly by the
// caller, never inferred from which inputs are present.
func Correlation(in CorrelationInput, opts Options) (*CorrelationResult, error) {
	opts = opts.withDefaults()
	alpha, err := TailProbability(opts.ConfLevel, opts.Hypothesis)
	if err != nil {
		return nil, err
	}

	res := &CorrelationResult{Test: opts.Test}

	switch opts.Test {
	case TestT:
		df := in.N - 2
		if opts.DF != nil {
			df = *opts.DF
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		rc := tc / math.Sqrt(df+tc*tc)

		res.Rc = rc
		res.SERc = math.Sqrt((1 - rc*rc) / df)
		res.Qc = tc
		res.DF = &df

		if in.R != nil {
			r := *in.R
			ser := math.Sqrt((1 - r*r) / df)
			res.SER = &ser
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagMissingStatistic)
		}

	case TestZ:
		if in.N <= 3 {
			return nil, errors.InvalidArgumentf("z-based correlation needs n > 3, got n=%v", in.N)
		}

		zc := math.Abs(dist.NormalQuantile(alpha))
		rc := math.Tanh(zc / math.Sqrt(in.N-3))
		rzc := math.Atanh(rc)
		serz := 1 / math.Sqrt(in.N-3)
		serc := math.Sqrt((1 - rc*rc) / (in.N - 2)) // raw-r units via the t-based formula

		res.Rc = rc
		res.Rzc = &rzc
		res.SERc = serc
		res.SERz = &serz
		res.Qc = zc

		if in.R != nil {
			// se_r follows the critical-value-based standard error here
			ser := serc
			res.SER = &ser
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagMissingStatistic)
		}

	default:
		return nil, errors.InvalidArgumentf("test must be %q or %q, got %q", TestT, TestZ, opts.Test)
	}

	return res, nil
}
