package critical

import (
	"critval/internal/errors"
)

// TailProbability converts a confidence level and a directional hypothesis
// into the tail probability fed to the quantile lookups. Two-sided tests
// split the rejection region across both tails, so at a fixed confidence
// level the two-sided tail is half the one-sided tail.
func TailProbability(confLevel float64, hypothesis Hypothesis) (float64, error) {
	if confLevel <= 0 || confLevel >= 1 {
		return 0, errors.InvalidArgumentf("conf level must be in (0, 1), got %v", confLevel)
	}

	switch hypothesis {
	case TwoSided:
		return (1 - confLevel) / 2, nil
	case Greater, Less:
		return 1 - confLevel, nil
	default:
		return 0, errors.InvalidArgumentf("hypothesis must be %q, %q or %q, got %q",
			TwoSided, Greater, Less, hypothesis)
	}
}
