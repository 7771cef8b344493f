package predictor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDistribution is reported at construction time for a
	// malformed distribution table. Use errors.Is to test for it.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrUnknownWord is reported by Predict when the queried word has no
	// entry in the table.
	ErrUnknownWord = errors.New("unknown word")
)

func NewErrorf(format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf(format, args...))
}

func newInvalidDistributionError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidDistribution, fmt.Sprintf(format, args...))
}

func newUnknownWordError(word string) error {
	return fmt.Errorf("%w: %q", ErrUnknownWord, word)
}
