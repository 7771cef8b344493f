package predictor

// TableBuilder accumulates raw successor weights and turns them into a
// cumulative DistributionTable. Weights need not sum to one; Build divides
// each list by its weight sum before accumulating.
type TableBuilder struct {
	// keys in first-Add order, so Build output is reproducible
	words   []string
	weights map[string][]weightedWord
}

type weightedWord struct {
	Weight float64
	Word   string
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		words:   make([]string, 0),
		weights: make(map[string][]weightedWord),
	}
}

// Add appends successor with the given raw weight to the list of words that
// may follow word.
func (self *TableBuilder) Add(word string, weight float64, successor string) {
	if _, ok := self.weights[word]; !ok {
		self.words = append(self.words, word)
	}
	self.weights[word] = append(self.weights[word], weightedWord{
		Weight: weight,
		Word:   successor,
	})
}

// Build normalizes the accumulated weights into cumulative probabilities
// and validates the resulting table.
func (self *TableBuilder) Build() (DistributionTable, error) {
	probs := make(DistributionTable, len(self.weights))
	for _, word := range self.words {
		list := self.weights[word]
		var sum float64
		for _, ww := range list {
			sum += ww.Weight
		}
		if sum <= 0 {
			return nil, newInvalidDistributionError(
				"weights for word %q must sum above zero", word)
		}
		cumulative := make([]WordProbability, 0, len(list))
		var running float64
		for _, ww := range list {
			running += ww.Weight / sum
			cumulative = append(cumulative, WordProbability{
				Word:                  ww.Word,
				CumulativeProbability: running,
			})
		}
		// pin the final entry to 1.0 so accumulation error cannot leak
		// out of Tolerance
		cumulative[len(cumulative)-1].CumulativeProbability = 1.0
		probs[word] = cumulative
	}
	if err := Validate(probs); err != nil {
		return nil, err
	}
	return probs, nil
}
