package critical

import (
	"math"

	"critval/internal/errors"
)

// OneSample computes the critical value and effect size for a one-sample
// t-test from either summary statistics or an already-computed t statistic.
//
// Both modes share df = n-1 (unless overridden) and
// dc = tc*sqrt(1/n); the critical raw mean bc = tc*se needs a standard
// error, which summary mode derives as s/sqrt(n) and statistic mode only
// has when the caller overrides it.
func OneSample(in OneSampleInput, opts Options) (*OneSampleResult, error) {
	opts = opts.withDefaults()
	alpha, err := TailProbability(opts.ConfLevel, opts.Hypothesis)
	if err != nil {
		return nil, err
	}

	res := &OneSampleResult{}

	switch v := in.(type) {
	case OneSampleSummary:
		df := v.N - 1
		if opts.DF != nil {
			df = *opts.DF
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		se := v.SD / math.Sqrt(v.N)
		if opts.SE != nil {
			se = *opts.SE
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		d := v.Mean / v.SD
		bc := tc * se

		res.D = &d
		res.Dc = tc * math.Sqrt(1/v.N)
		res.Bc = &bc
		res.Tc = tc
		res.DF = df
		res.SE = &se

	case OneSampleStatistic:
		df := v.N - 1
		if opts.DF != nil {
			df = *opts.DF
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		res.Dc = tc * math.Sqrt(1/v.N)
		res.Tc = tc
		res.DF = df

		if v.T != nil {
			d := *v.T * math.Sqrt(1/v.N)
			res.D = &d
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagMissingStatistic)
		}

		if opts.SE != nil {
			se := *opts.SE
			bc := tc * se
			res.SE = &se
			res.Bc = &bc
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagMissingStdErr)
		}

	default:
		return nil, errors.InvalidArgument("one-sample input must be OneSampleSummary or OneSampleStatistic")
	}

	j := CorrectionFactor(res.DF)
	if res.D != nil {
		g := j * *res.D
		res.G = &g
	}
	res.Gc = j * res.Dc

	return res, nil
}
