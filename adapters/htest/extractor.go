// Package htest extracts the numeric inputs the critical-value derivations
// need from externally produced hypothesis-test results or from raw
// samples. It is the only place that decides which derivation mode a loose
// bundle of optional fields maps to; the domain entry points always receive
// an already-resolved tagged input.
package htest

import (
	"critval/domain/critical"
	"critval/internal/errors"
)

// Result is a loosely-typed record of the basic fields an external
// hypothesis-test object exposes. Absent fields are nil.
type Result struct {
	M1  *float64 `json:"m1,omitempty"`
	M2  *float64 `json:"m2,omitempty"`
	SD1 *float64 `json:"sd1,omitempty"`
	SD2 *float64 `json:"sd2,omitempty"`
	N1  *float64 `json:"n1,omitempty"`
	N2  *float64 `json:"n2,omitempty"`
	T   *float64 `json:"t,omitempty"`
	R   *float64 `json:"r,omitempty"`
	R12 *float64 `json:"r12,omitempty"`
	SE  *float64 `json:"se,omitempty"`
	DF  *float64 `json:"df,omitempty"`
}

// Overrides copies the verbatim se/df overrides from the record onto opts.
func (r Result) Overrides(opts critical.Options) critical.Options {
	if r.SE != nil {
		opts.SE = r.SE
	}
	if r.DF != nil {
		opts.DF = r.DF
	}
	return opts
}

// OneSampleInput resolves the derivation mode for a one-sample test:
// summary statistics when a mean is present, test statistic otherwise.
func OneSampleInput(r Result) (critical.OneSampleInput, error) {
	if r.N1 == nil {
		return nil, errors.InvalidInput("one-sample test requires a sample size")
	}
	if r.M1 != nil {
		if r.SD1 == nil {
			return nil, errors.InvalidInput("one-sample summary mode requires a standard deviation")
		}
		return critical.OneSampleSummary{Mean: *r.M1, SD: *r.SD1, N: *r.N1}, nil
	}
	return critical.OneSampleStatistic{T: r.T, N: *r.N1}, nil
}

// TwoSampleInput resolves the derivation mode for an independent two-sample
// test: summary statistics when either mean is present.
func TwoSampleInput(r Result) (critical.TwoSampleInput, error) {
	if r.N1 == nil || r.N2 == nil {
		return nil, errors.InvalidInput("two-sample test requires both sample sizes")
	}
	if r.M1 != nil || r.M2 != nil {
		if r.M1 == nil || r.M2 == nil || r.SD1 == nil || r.SD2 == nil {
			return nil, errors.InvalidInput("two-sample summary mode requires both means and both standard deviations")
		}
		return critical.TwoSampleSummary{
			M1: *r.M1, M2: *r.M2,
			SD1: *r.SD1, SD2: *r.SD2,
			N1: *r.N1, N2: *r.N2,
		}, nil
	}
	return critical.TwoSampleStatistic{T: r.T, N1: *r.N1, N2: *r.N2}, nil
}

// PairedInput resolves the derivation mode for a paired test. M1/SD1 alone
// describe pre-computed differences; with M2/SD2 they describe the two raw
// conditions.
func PairedInput(r Result) (critical.PairedInput, error) {
	if r.N1 == nil {
		return nil, errors.InvalidInput("paired test requires a sample size")
	}
	if r.M1 != nil {
		if r.SD1 == nil {
			return nil, errors.InvalidInput("paired summary mode requires a standard deviation")
		}
		return critical.PairedSummary{
			M1: *r.M1, SD1: *r.SD1, N: *r.N1,
			M2: r.M2, SD2: r.SD2, R12: r.R12,
		}, nil
	}
	return critical.PairedStatistic{T: r.T, N: *r.N1, R12: r.R12}, nil
}

// CorrelationInput extracts the correlation-test inputs.
func CorrelationInput(r Result) (critical.CorrelationInput, error) {
	if r.N1 == nil {
		return critical.CorrelationInput{}, errors.InvalidInput("correlation test requires a sample size")
	}
	return critical.CorrelationInput{N: *r.N1, R: r.R}, nil
}
