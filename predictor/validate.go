package predictor

import (
	"math"
)

// Tolerance absorbs floating-point accumulation error in caller-supplied
// cumulative sums. It applies to the upper bound check and to the final
// value check; validation never compares floats exactly.
const Tolerance = 0.001

// Validate checks the DistributionTable invariants: the table is not empty,
// no list is empty, the cumulative probabilities of each list are strictly
// ascending and within (0, 1+Tolerance], and each list's final value is
// within Tolerance of 1.0. After Validate succeeds the table is trusted for
// the life of the Predictor and sampling performs no further checks.
func Validate(probs DistributionTable) error {
	if len(probs) == 0 {
		return newInvalidDistributionError("table must not be empty")
	}
	for word, list := range probs {
		if len(list) == 0 {
			return newInvalidDistributionError(
				"list for word %q must not be empty", word)
		}
		previous := float64(0)
		for _, wp := range list {
			p := wp.CumulativeProbability
			if p <= previous {
				return newInvalidDistributionError(
					"cumulative probabilities for word %q must be strictly ascending", word)
			}
			if p > 1+Tolerance {
				return newInvalidDistributionError(
					"cumulative probability for word %q must be > 0 and <= 1.0 but was %g",
					word, p)
			}
			previous = p
		}
		if math.Abs(previous-1.0) > Tolerance {
			return newInvalidDistributionError(
				"final cumulative probability for word %q must be 1.0 but was %g",
				word, previous)
		}
	}
	return nil
}
