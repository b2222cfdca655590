package critical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectionFactor_KnownValues(t *testing.T) {
	// J(2) = 1/sqrt(pi), since Gamma(1) = 1 and Gamma(1/2) = sqrt(pi)
	assert.InDelta(t, 1/math.Sqrt(math.Pi), CorrectionFactor(2), 1e-12)

	// R-verified: exp(lgamma(5) - log(sqrt(5)) - lgamma(4.5)) for df = 10
	assert.InDelta(t, 0.9227456, CorrectionFactor(10), 1e-6)
}

func TestCorrectionFactor_MatchesApproximation(t *testing.T) {
	// The common closed-form approximation 1 - 3/(4*df - 1) should stay
	// within 1% of the exact factor for df >= 2.
	for df := 2.0; df <= 200; df++ {
		exact := CorrectionFactor(df)
		approx := 1 - 3/(4*df-1)
		assert.InDelta(t, approx, exact, 0.01, "df=%v", df)
	}
}

func TestCorrectionFactor_ConvergesToOne(t *testing.T) {
	assert.InDelta(t, 1.0, CorrectionFactor(10000), 1e-4)
}

func TestCorrectionFactor_ShrinksEffectSizes(t *testing.T) {
	// J is a shrinkage factor: strictly inside (0, 1) and increasing in df.
	prev := 0.0
	for df := 2.0; df <= 100; df++ {
		j := CorrectionFactor(df)
		if j <= 0 || j >= 1 {
			t.Fatalf("J(%v) = %v outside (0, 1)", df, j)
		}
		if j <= prev {
			t.Fatalf("J not increasing at df=%v: %v <= %v", df, j, prev)
		}
		prev = j
	}
}

func TestCorrectionFactor_DegenerateDF(t *testing.T) {
	assert.True(t, math.IsNaN(CorrectionFactor(1)))
	assert.True(t, math.IsNaN(CorrectionFactor(0)))
}
