package critical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoSample_PooledFromSummary(t *testing.T) {
	res, err := TwoSample(TwoSampleSummary{
		M1: 5.5, M2: 5.0, SD1: 1.0, SD2: 1.2, N1: 30, N2: 30,
	}, Options{EqualVariances: true})
	require.NoError(t, err)

	assert.Equal(t, 58.0, res.DF)
	// R-verified: abs(qt(0.025, 58)) = 2.0017175
	assert.InDelta(t, 2.0017175, res.Tc, 1e-6)

	pooled := math.Sqrt((29*1.0 + 29*1.44) / 58)
	require.NotNil(t, res.D)
	assert.InDelta(t, 0.5/pooled, *res.D, 1e-9)

	require.NotNil(t, res.SE)
	assert.InDelta(t, pooled*math.Sqrt(1.0/30+1.0/30), *res.SE, 1e-9)

	assert.InDelta(t, res.Tc*math.Sqrt(1.0/30+1.0/30), res.Dc, 1e-9)
	require.NotNil(t, res.Bc)
	assert.InDelta(t, res.Tc**res.SE, *res.Bc, 1e-9)
	assert.Empty(t, res.Diagnostics)
}

// Feeding the record's own bc/se back through the t CDF must reproduce the
// two-sided alpha.
func TestTwoSample_CriticalValueRoundTrip(t *testing.T) {
	res, err := TwoSample(TwoSampleSummary{
		M1: 5.5, M2: 5.0, SD1: 1.0, SD2: 1.2, N1: 30, N2: 30,
	}, Options{EqualVariances: true})
	require.NoError(t, err)

	p := 2 * (1 - dist.TCDF(*res.Bc / *res.SE, res.DF))
	assert.InDelta(t, 0.05, p, 1e-9)
}

func TestTwoSample_WelchFromSummary(t *testing.T) {
	res, err := TwoSample(TwoSampleSummary{
		M1: 12.0, M2: 10.0, SD1: 1.0, SD2: 2.0, N1: 30, N2: 40,
	}, Options{})
	require.NoError(t, err)

	// Welch-Satterthwaite: se^4 / (se1^4/(n1-1) + se2^4/(n2-1))
	se1sq := 1.0 / 30
	se2sq := 4.0 / 40
	wantDF := (se1sq + se2sq) * (se1sq + se2sq) /
		(se1sq*se1sq/29 + se2sq*se2sq/39)
	assert.InDelta(t, wantDF, res.DF, 1e-9)
	assert.InDelta(t, 60.32, res.DF, 0.01)

	require.NotNil(t, res.SE)
	assert.InDelta(t, math.Sqrt(se1sq+se2sq), *res.SE, 1e-12)

	// denominator is the average-variance SD, not the pooled SD
	require.NotNil(t, res.D)
	assert.InDelta(t, 2.0/math.Sqrt((1.0+4.0)/2), *res.D, 1e-9)

	// dc keeps the pooled-style scaling under the Welch df
	tc := math.Abs(dist.TQuantile(0.025, res.DF))
	assert.InDelta(t, tc*math.Sqrt(1.0/30+1.0/40), res.Dc, 1e-9)
	assert.Empty(t, res.Diagnostics)
}

func TestTwoSample_FromStatisticMissingSE(t *testing.T) {
	res, err := TwoSample(TwoSampleStatistic{T: Float(2.5), N1: 30, N2: 30},
		Options{EqualVariances: true})
	require.NoError(t, err)

	require.NotNil(t, res.D)
	assert.InDelta(t, 2.5*math.Sqrt(1.0/30+1.0/30), *res.D, 1e-9)
	assert.False(t, math.IsNaN(res.Dc))
	assert.Equal(t, 58.0, res.DF)

	assert.Nil(t, res.Bc)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, DiagMissingStdErr, res.Diagnostics[0])
}

// A statistic-only record at the Welch default carries exactly one
// diagnostic, the branch warning; bc is still not derivable without se.
func TestTwoSample_WelchFromStatisticWarns(t *testing.T) {
	res, err := TwoSample(TwoSampleStatistic{T: Float(2.5), N1: 30, N2: 30}, Options{})
	require.NoError(t, err)

	require.NotNil(t, res.D)
	assert.False(t, math.IsNaN(*res.D))
	assert.False(t, math.IsNaN(res.Dc))
	// df falls back to the pooled value, which the sd1=sd2 assumption implies
	assert.Equal(t, 58.0, res.DF)

	assert.Nil(t, res.Bc)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, DiagWelchFromStatistic, res.Diagnostics[0])
}

func TestTwoSample_BiasCorrection(t *testing.T) {
	res, err := TwoSample(TwoSampleSummary{
		M1: 5.5, M2: 5.0, SD1: 1.0, SD2: 1.2, N1: 30, N2: 30,
	}, Options{EqualVariances: true})
	require.NoError(t, err)

	j := CorrectionFactor(res.DF)
	require.NotNil(t, res.G)
	assert.InDelta(t, j**res.D, *res.G, 1e-12)
	assert.InDelta(t, j*res.Dc, res.Gc, 1e-12)
	assert.Less(t, *res.G, *res.D, "correction must shrink a positive effect")
}

func TestTwoSample_InvalidSampleSizes(t *testing.T) {
	_, err := TwoSample(TwoSampleSummary{M1: 1, M2: 0, SD1: 1, SD2: 1, N1: 1, N2: 30}, Options{})
	require.Error(t, err)

	_, err = TwoSample(TwoSampleStatistic{T: Float(2.0), N1: 30, N2: 1}, Options{})
	require.Error(t, err)
}
