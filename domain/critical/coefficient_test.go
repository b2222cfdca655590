package critical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critval/internal/errors"
)

func TestCoefficient_TFromDF(t *testing.T) {
	res, err := Coefficient(CoefficientInput{SEB: []float64{0.1, 0.2}, DF: Float(40)}, Options{})
	require.NoError(t, err)

	assert.Equal(t, TestT, res.Test)
	require.Len(t, res.Bc, 2)
	// R-verified: abs(qt(0.025, 40)) = 2.0210754
	assert.InDelta(t, 0.20210754, res.Bc[0], 1e-6)
	assert.InDelta(t, 0.40421508, res.Bc[1], 1e-6)
}

func TestCoefficient_DFFromNAndP(t *testing.T) {
	res, err := Coefficient(CoefficientInput{
		SEB: []float64{0.05},
		N:   Float(102),
		P:   Float(1),
	}, Options{})
	require.NoError(t, err)

	// df = 102 - 1 - 1 = 100; R-verified abs(qt(0.025, 100)) = 1.9839715
	assert.InDelta(t, 1.9839715*0.05, res.Bc[0], 1e-6)
}

func TestCoefficient_ZMethod(t *testing.T) {
	res, err := Coefficient(CoefficientInput{SEB: []float64{0.1}, DF: Float(40)},
		Options{Test: TestZ})
	require.NoError(t, err)

	assert.Equal(t, TestZ, res.Test)
	assert.InDelta(t, 0.19599640, res.Bc[0], 1e-6)
}

func TestCoefficient_UnresolvableDF(t *testing.T) {
	// neither df nor both n and p: structurally impossible to resolve
	_, err := Coefficient(CoefficientInput{SEB: []float64{0.1}, N: Float(50)}, Options{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))

	_, err = Coefficient(CoefficientInput{SEB: []float64{0.1}}, Options{Test: TestZ})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestCoefficient_EmptySEB(t *testing.T) {
	_, err := Coefficient(CoefficientInput{DF: Float(10)}, Options{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestCoefficient_OneSided(t *testing.T) {
	res, err := Coefficient(CoefficientInput{SEB: []float64{1.0}, DF: Float(1000)},
		Options{Hypothesis: Greater, Test: TestZ})
	require.NoError(t, err)

	// R-verified: abs(qnorm(0.05)) = 1.6448536
	assert.InDelta(t, 1.6448536, res.Bc[0], 1e-6)
}
