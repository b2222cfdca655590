package critical

import (
	"math"

	"critval/internal/errors"
)

// TwoSample computes the critical value and effect size for an independent
// two-sample t-test. Options.EqualVariances selects the pooled branch;
// the zero value is the Welch branch, matching the usual t-test default.
//
// The critical effect size dc uses tc*sqrt(1/n1+1/n2) in both branches.
// For the Welch branch this reuses the pooled-style scaling even though the
// observed effect size is standardized by the average-variance SD; the
// approximation is kept so critical effect sizes stay comparable across
// variance assumptions.
func TwoSample(in TwoSampleInput, opts Options) (*TwoSampleResult, error) {
	opts = opts.withDefaults()
	alpha, err := TailProbability(opts.ConfLevel, opts.Hypothesis)
	if err != nil {
		return nil, err
	}

	res := &TwoSampleResult{}

	switch v := in.(type) {
	case TwoSampleSummary:
		if v.N1 <= 1 || v.N2 <= 1 {
			return nil, errors.InvalidArgumentf("both sample sizes must exceed 1, got n1=%v n2=%v", v.N1, v.N2)
		}

		var df, se, d float64
		b := v.M1 - v.M2

		if opts.EqualVariances {
			df = v.N1 + v.N2 - 2
			pooled := math.Sqrt(((v.N1-1)*v.SD1*v.SD1 + (v.N2-1)*v.SD2*v.SD2) / df)
			se = pooled * math.Sqrt(1/v.N1+1/v.N2)
			d = b / pooled
		} else {
			se1sq := v.SD1 * v.SD1 / v.N1
			se2sq := v.SD2 * v.SD2 / v.N2
			se = math.Sqrt(se1sq + se2sq)
			// Welch-Satterthwaite approximation
			df = (se1sq + se2sq) * (se1sq + se2sq) /
				(se1sq*se1sq/(v.N1-1) + se2sq*se2sq/(v.N2-1))
			avgSD := math.Sqrt((v.SD1*v.SD1 + v.SD2*v.SD2) / 2)
			d = b / avgSD
		}

		if opts.DF != nil {
			df = *opts.DF
		}
		if opts.SE != nil {
			se = *opts.SE
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		bc := tc * se

		res.D = &d
		res.Dc = tc * math.Sqrt(1/v.N1+1/v.N2)
		res.Bc = &bc
		res.Tc = tc
		res.DF = df
		res.SE = &se

	case TwoSampleStatistic:
		if v.N1 <= 1 || v.N2 <= 1 {
			return nil, errors.InvalidArgumentf("both sample sizes must exceed 1, got n1=%v n2=%v", v.N1, v.N2)
		}

		// From t alone the unequal-variance denominator cannot be
		// reconstructed without assuming sd1 = sd2, under which the Welch df
		// collapses to the pooled df.
		if !opts.EqualVariances {
			res.Diagnostics = append(res.Diagnostics, DiagWelchFromStatistic)
		}

		df := v.N1 + v.N2 - 2
		if opts.DF != nil {
			df = *opts.DF
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		res.Dc = tc * math.Sqrt(1/v.N1+1/v.N2)
		res.Tc = tc
		res.DF = df

		if v.T != nil {
			d := *v.T * math.Sqrt(1/v.N1+1/v.N2)
			res.D = &d
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagMissingStatistic)
		}

		if opts.SE != nil {
			se := *opts.SE
			bc := tc * se
			res.SE = &se
			res.Bc = &bc
		} else if opts.EqualVariances {
			// bc stays nil in both branches without se; the Welch statistic
			// mode is already flagged above, so only the pooled mode reports
			// the missing standard error
			res.Diagnostics = append(res.Diagnostics, DiagMissingStdErr)
		}

	default:
		return nil, errors.InvalidArgument("two-sample input must be TwoSampleSummary or TwoSampleStatistic")
	}

	j := CorrectionFactor(res.DF)
	if res.D != nil {
		g := j * *res.D
		res.G = &g
	}
	res.Gc = j * res.Dc

	return res, nil
}
