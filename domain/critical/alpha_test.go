package critical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critval/internal/errors"
)

func TestTailProbability(t *testing.T) {
	tests := []struct {
		name       string
		confLevel  float64
		hypothesis Hypothesis
		want       float64
	}{
		{"two-sided default", 0.95, TwoSided, 0.025},
		{"greater", 0.95, Greater, 0.05},
		{"less", 0.95, Less, 0.05},
		{"two-sided 99", 0.99, TwoSided, 0.005},
		{"greater 90", 0.90, Greater, 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TailProbability(tt.confLevel, tt.hypothesis)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

// At a fixed confidence level the two-sided tail is half the one-sided tail.
func TestTailProbability_TwoSidedComposition(t *testing.T) {
	for _, c := range []float64{0.80, 0.90, 0.95, 0.99, 0.999} {
		two, err := TailProbability(c, TwoSided)
		require.NoError(t, err)
		one, err := TailProbability(c, Greater)
		require.NoError(t, err)
		assert.InDelta(t, one/2, two, 1e-12, "conf level %v", c)
	}
}

func TestTailProbability_InvalidInputs(t *testing.T) {
	_, err := TailProbability(0.95, Hypothesis("sideways"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))

	for _, c := range []float64{0, 1, -0.5, 1.5} {
		_, err := TailProbability(c, TwoSided)
		require.Error(t, err, "conf level %v", c)
		assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
	}
}
