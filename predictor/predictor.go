package predictor

import (
	"math/rand"
)

// WordProbability associates a candidate successor word with the cumulative
// probability, in the range (0, 1], that this word or any of the preceding
// words in its list is chosen.
type WordProbability struct {
	Word                  string
	CumulativeProbability float64
}

// DistributionTable maps each word to the ordered list of words that may
// follow it. The cumulative probabilities of every list must be strictly
// ascending and the final one must be 1.0.
//
// Example:
//
//	the: [[cat, .1], [dog, .5], [lizard, 1.0]]
//	cat: [[sat, .6], [ate, 1.0]]
//
// Here "cat" follows "the" 10% of the time (.1), "dog" 40% (.5-.1) and
// "lizard" 50% (1.0-.5).
type DistributionTable map[string][]WordProbability

// Predictor picks successor words according to a validated
// DistributionTable. The table is validated once at construction and never
// mutated afterwards.
//
// A Predictor owns its random source exclusively and advances it on every
// Predict call. It is not safe for concurrent use: give each goroutine its
// own Predictor over an independently seeded source.
type Predictor struct {
	random *rand.Rand
	probs  DistributionTable
}

// NewPredictor validates probs and returns a Predictor drawing from random.
// The random source must be supplied explicitly; use NewDefaultRandom for a
// freshly seeded one. Fails with ErrInvalidDistribution if probs violates
// any of the DistributionTable invariants.
func NewPredictor(probs DistributionTable, random *rand.Rand) (*Predictor, error) {
	if random == nil {
		return nil, NewErrorf("random source must not be nil")
	}
	if err := Validate(probs); err != nil {
		return nil, err
	}
	return &Predictor{
		random: random,
		probs:  probs,
	}, nil
}

// NewDefaultRandom returns a freshly seeded random source for callers that
// do not need determinism.
func NewDefaultRandom() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}

// Predict returns the next word after word, chosen with probability equal
// to the gap between its cumulative value and the previous entry's. Fails
// with ErrUnknownWord if word has no entry in the table.
func (self *Predictor) Predict(word string) (string, error) {
	list, ok := self.probs[word]
	if !ok {
		return "", newUnknownWordError(word)
	}
	target := self.random.Float64()
	index := lowerBound(list, target)
	// the final cumulative value may sit Tolerance below 1.0, a draw
	// above it selects the last entry
	if index == len(list) {
		index = len(list) - 1
	}
	return list[index].Word, nil
}

// Walk generates a chain of count words starting after start, feeding each
// prediction back in as the next query. If the chain reaches a word with no
// successor list it stops with ErrUnknownWord, returning the words
// generated so far along with the error.
func (self *Predictor) Walk(start string, count int) ([]string, error) {
	words := make([]string, 0, count)
	current := start
	for i := 0; i < count; i++ {
		next, err := self.Predict(current)
		if err != nil {
			return words, err
		}
		words = append(words, next)
		current = next
	}
	return words, nil
}

// lowerBound returns the smallest index whose cumulative probability is
// >= target, or len(list) when no entry qualifies. The latter is only
// possible when the final cumulative value sits below 1.0 within Tolerance
// and the draw lands above it.
func lowerBound(list []WordProbability, target float64) int {
	low, high := 0, len(list)
	for low < high {
		mid := low + (high-low)/2
		if list[mid].CumulativeProbability >= target {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low
}
