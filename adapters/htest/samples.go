package htest

import (
	"github.com/montanaflynn/stats"

	"critval/domain/critical"
	"critval/internal/errors"
)

// OneSampleFromData summarizes a raw sample into one-sample summary inputs.
func OneSampleFromData(sample []float64) (critical.OneSampleSummary, error) {
	m, sd, err := describe(sample)
	if err != nil {
		return critical.OneSampleSummary{}, err
	}
	return critical.OneSampleSummary{Mean: m, SD: sd, N: float64(len(sample))}, nil
}

// TwoSampleFromData summarizes two independent groups.
func TwoSampleFromData(group1, group2 []float64) (critical.TwoSampleSummary, error) {
	m1, sd1, err := describe(group1)
	if err != nil {
		return critical.TwoSampleSummary{}, err
	}
	m2, sd2, err := describe(group2)
	if err != nil {
		return critical.TwoSampleSummary{}, err
	}
	return critical.TwoSampleSummary{
		M1: m1, M2: m2,
		SD1: sd1, SD2: sd2,
		N1: float64(len(group1)), N2: float64(len(group2)),
	}, nil
}

// PairedFromData summarizes two paired conditions, including their
// correlation so the pooled effect-size family needs no defaulting.
func PairedFromData(cond1, cond2 []float64) (critical.PairedSummary, error) {
	if len(cond1) != len(cond2) {
		return critical.PairedSummary{}, errors.InvalidInput("paired conditions must have equal length")
	}
	m1, sd1, err := describe(cond1)
	if err != nil {
		return critical.PairedSummary{}, err
	}
	m2, sd2, err := describe(cond2)
	if err != nil {
		return critical.PairedSummary{}, err
	}
	r12, err := stats.Pearson(cond1, cond2)
	if err != nil {
		return critical.PairedSummary{}, errors.Wrap(err, "computing condition correlation")
	}
	return critical.PairedSummary{
		M1: m1, SD1: sd1, N: float64(len(cond1)),
		M2: critical.Float(m2), SD2: critical.Float(sd2), R12: critical.Float(r12),
	}, nil
}

// CorrelationFromData computes the observed Pearson correlation for a
// correlation-test input.
func CorrelationFromData(x, y []float64) (critical.CorrelationInput, error) {
	if len(x) != len(y) {
		return critical.CorrelationInput{}, errors.InvalidInput("correlation samples must have equal length")
	}
	r, err := stats.Pearson(x, y)
	if err != nil {
		return critical.CorrelationInput{}, errors.Wrap(err, "computing correlation")
	}
	return critical.CorrelationInput{N: float64(len(x)), R: critical.Float(r)}, nil
}

func describe(sample []float64) (mean, sd float64, err error) {
	if len(sample) < 2 {
		return 0, 0, errors.InvalidInput("sample needs at least 2 observations")
	}
	mean, err = stats.Mean(sample)
	if err != nil {
		return 0, 0, errors.Wrap(err, "computing mean")
	}
	sd, err = stats.StandardDeviationSample(sample)
	if err != nil {
		return 0, 0, errors.Wrap(err, "computing standard deviation")
	}
	return mean, sd, nil
}
