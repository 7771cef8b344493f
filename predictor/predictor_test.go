package predictor

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func testTable() DistributionTable {
	return DistributionTable{
		"the": []WordProbability{
			{"cat", 0.1},
			{"dog", 0.5},
			{"lizard", 1.0},
		},
		"cat": []WordProbability{
			{"sat", 0.6},
			{"ate", 1.0},
		},
	}
}

// scriptedSource is a rand.Source whose Int63 values are chosen so that
// rand.Rand.Float64 returns the scripted targets in order.
type scriptedSource struct {
	targets []float64
	index   int
}

func (self *scriptedSource) Int63() int64 {
	target := self.targets[self.index%len(self.targets)]
	self.index++
	return int64(target * (1 << 63))
}

func (self *scriptedSource) Seed(seed int64) {
}

func newScriptedRandom(targets ...float64) *rand.Rand {
	return rand.New(&scriptedSource{targets: targets})
}

func TestNewPredictorRequiresRandom(t *testing.T) {
	p, err := NewPredictor(testTable(), nil)
	require.Nil(t, p)
	require.NotNil(t, err)
}

func TestPredictScriptedTargets(t *testing.T) {
	p, err := NewPredictor(testTable(), newScriptedRandom(0.05, 0.3, 0.8))
	require.Nil(t, err)
	expected := []string{"cat", "dog", "lizard"}
	for _, word := range expected {
		next, err := p.Predict("the")
		require.Nil(t, err)
		require.Equal(t, word, next)
	}
}

func TestPredictBoundaryTargets(t *testing.T) {
	// target 0 selects the first entry, a target just below the final
	// cumulative value selects the last
	p, err := NewPredictor(testTable(), newScriptedRandom(0, 0.9999))
	require.Nil(t, err)
	next, err := p.Predict("the")
	require.Nil(t, err)
	require.Equal(t, "cat", next)
	next, err = p.Predict("the")
	require.Nil(t, err)
	require.Equal(t, "lizard", next)
}

func TestPredictDrawAboveFinalValue(t *testing.T) {
	// the final cumulative value may sit Tolerance below 1.0; a draw
	// above it must still select the last entry instead of faulting
	probs := DistributionTable{
		"the": []WordProbability{
			{"cat", 0.5},
			{"dog", 0.9995},
		},
	}
	p, err := NewPredictor(probs, newScriptedRandom(0.9999, 0.9996))
	require.Nil(t, err)
	for i := 0; i < 2; i++ {
		next, err := p.Predict("the")
		require.Nil(t, err)
		require.Equal(t, "dog", next)
	}
}

func TestPredictSingleEntryListBelowOne(t *testing.T) {
	probs := DistributionTable{
		"one": []WordProbability{
			{"only", 0.9995},
		},
	}
	p, err := NewPredictor(probs, newScriptedRandom(0.9999))
	require.Nil(t, err)
	next, err := p.Predict("one")
	require.Nil(t, err)
	require.Equal(t, "only", next)
}

func TestPredictSingleEntryList(t *testing.T) {
	probs := DistributionTable{
		"one": []WordProbability{
			{"only", 1.0},
		},
	}
	p, err := NewPredictor(probs, newScriptedRandom(0, 0.5, 0.9999))
	require.Nil(t, err)
	for i := 0; i < 3; i++ {
		next, err := p.Predict("one")
		require.Nil(t, err)
		require.Equal(t, "only", next)
	}
}

func TestPredictUnknownWord(t *testing.T) {
	p, err := NewPredictor(testTable(), NewDefaultRandom())
	require.Nil(t, err)
	next, err := p.Predict("lizard")
	require.Equal(t, "", next)
	require.True(t, errors.Is(err, ErrUnknownWord))
}

// linearScan is the reference definition of selection: the first entry
// whose cumulative probability is >= target.
func linearScan(list []WordProbability, target float64) int {
	for i := 0; i < len(list); i++ {
		if list[i].CumulativeProbability >= target {
			return i
		}
	}
	return -1
}

func TestLowerBoundMatchesLinearScan(t *testing.T) {
	lists := [][]WordProbability{
		{{"only", 1.0}},
		{{"a", 0.5}, {"b", 1.0}},
		{{"cat", 0.1}, {"dog", 0.5}, {"lizard", 1.0}},
		{{"a", 0.2}, {"b", 0.4}, {"c", 0.6}, {"d", 0.8}, {"e", 1.0}},
	}
	for _, list := range lists {
		// sweep targets across [0, 1), including every boundary value
		// and points just around it
		targets := []float64{0}
		for _, wp := range list {
			targets = append(targets,
				wp.CumulativeProbability-1e-9,
				wp.CumulativeProbability,
				wp.CumulativeProbability+1e-9)
		}
		for target := 0.0; target < 1.0; target += 0.001 {
			targets = append(targets, target)
		}
		for _, target := range targets {
			if target < 0 || target >= 1 {
				continue
			}
			require.Equal(t, linearScan(list, target), lowerBound(list, target))
		}
	}
}

func TestPredictFrequencies(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	p, err := NewPredictor(testTable(), random)
	require.Nil(t, err)
	total := 100000
	counts := make(map[string]int)
	for i := 0; i < total; i++ {
		next, err := p.Predict("the")
		require.Nil(t, err)
		counts[next]++
	}
	expected := map[string]float64{
		"cat":    0.1,
		"dog":    0.4,
		"lizard": 0.5,
	}
	for word, share := range expected {
		got := float64(counts[word]) / float64(total)
		require.True(t, got > share-0.01 && got < share+0.01)
	}
}

func TestPredictDeterminism(t *testing.T) {
	seed := int64(12345)
	p1, err := NewPredictor(testTable(), rand.New(rand.NewSource(seed)))
	require.Nil(t, err)
	p2, err := NewPredictor(testTable(), rand.New(rand.NewSource(seed)))
	require.Nil(t, err)
	words := []string{"the", "cat", "the", "the", "cat", "the"}
	for _, word := range words {
		n1, err := p1.Predict(word)
		require.Nil(t, err)
		n2, err := p2.Predict(word)
		require.Nil(t, err)
		require.Equal(t, n1, n2)
	}
}

func TestWalk(t *testing.T) {
	probs := DistributionTable{
		"the": []WordProbability{
			{"cat", 1.0},
		},
		"cat": []WordProbability{
			{"the", 1.0},
		},
	}
	p, err := NewPredictor(probs, NewDefaultRandom())
	require.Nil(t, err)
	words, err := p.Walk("the", 4)
	require.Nil(t, err)
	require.Equal(t, []string{"cat", "the", "cat", "the"}, words)
}

func TestWalkStopsOnUnknownWord(t *testing.T) {
	probs := DistributionTable{
		"the": []WordProbability{
			{"end", 1.0},
		},
	}
	p, err := NewPredictor(probs, NewDefaultRandom())
	require.Nil(t, err)
	words, err := p.Walk("the", 10)
	require.True(t, errors.Is(err, ErrUnknownWord))
	require.Equal(t, []string{"end"}, words)
}
