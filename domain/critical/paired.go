package critical

import (
	"math"

	"critval/internal/errors"
)

// Paired computes critical values and both effect-size parameterizations for
// a paired t-test: the difference-standardized family (dz, using the SD of
// the paired differences) and the pooled family (d, using the
// average-variance SD). The two are linked by
//
//	pooled_sd = sd_diff / sqrt(2*(1-r12))  =>  d = dz * sqrt(2*(1-r12))
//
// When r12 is not supplied it defaults to 0 and the pooled family is flagged
// with CORRELATION_DEFAULTED, since the conversion is unreliable without the
// true correlation between conditions.
func Paired(in PairedInput, opts Options) (*PairedResult, error) {
	opts = opts.withDefaults()
	alpha, err := TailProbability(opts.ConfLevel, opts.Hypothesis)
	if err != nil {
		return nil, err
	}

	res := &PairedResult{}

	switch v := in.(type) {
	case PairedSummary:
		df := v.N - 1
		if opts.DF != nil {
			df = *opts.DF
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		r12 := 0.0
		if v.R12 != nil {
			r12 = *v.R12
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagCorrelationDefaulted)
		}

		var mdiff, sdiff float64
		if v.M2 != nil && v.SD2 != nil {
			mdiff = v.M1 - *v.M2
			sdiff = math.Sqrt(v.SD1*v.SD1 + *v.SD2**v.SD2 - 2*r12*v.SD1**v.SD2)
		} else {
			// M1/SD1 already describe the paired differences
			mdiff = v.M1
			sdiff = v.SD1
		}

		se := sdiff / math.Sqrt(v.N)
		if opts.SE != nil {
			se = *opts.SE
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		conv := math.Sqrt(2 * (1 - r12))

		dz := mdiff / sdiff
		d := dz * conv
		bc := tc * se

		res.Dz = &dz
		res.Dzc = tc * math.Sqrt(1/v.N)
		res.D = &d
		res.Dc = res.Dzc * conv
		res.Bc = &bc
		res.Tc = tc
		res.DF = df
		res.SE = &se

	case PairedStatistic:
		df := v.N - 1
		if opts.DF != nil {
			df = *opts.DF
		}
		if df <= 0 {
			return nil, errors.InvalidArgumentf("degrees of freedom must be positive, got %v", df)
		}

		r12 := 0.0
		if v.R12 != nil {
			r12 = *v.R12
		} else {
			res.Diagnostics = append(res.Diagnostics, DiagCorrelationDefaulted)
		}

		tc := math.Abs(dist.TQuantile(alpha, df))
		conv := math.Sqrt(2 * (1 - r12))

		res.Dzc = tc * math.Sqrt(1/v.N)
		res.Dc = res.Dzc * conv
		res.Tc = tc
		res.DF = df

		if v.T != nil {
			dz := *v.T * math.Sqrt(1/v.N)
			d := dz * conv
			res.Dz = &dz
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
		return nil, errors.InvalidArgument("paired input must be PairedSummary or PairedStatistic")
	}

	j := CorrectionFactor(res.DF)
	if res.Dz != nil {
		gz := j * *res.Dz
		res.Gz = &gz
	}
	if res.D != nil {
		g := j * *res.D
		res.G = &g
	}
	res.Gzc = j * res.Dzc
	res.Gc = j * res.Dc

	return res, nil
}
