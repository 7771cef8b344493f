package predictor

// Generator produces a sequence of string values.
type Generator interface {
	// NextString generates the next value in the sequence.
	NextString() string
	// LastString returns the value most recently generated by NextString,
	// generating one first if none has been generated yet.
	LastString() string
}

// SuccessorGenerator binds a Predictor to one word and exposes the stream
// of its successors through the Generator interface. Each NextString call
// performs a single prediction for the bound word.
type SuccessorGenerator struct {
	predictor *Predictor
	word      string
	lastValue string
}

// NewSuccessorGenerator fails with ErrUnknownWord if word has no entry in
// the predictor's table.
func NewSuccessorGenerator(p *Predictor, word string) (*SuccessorGenerator, error) {
	if _, ok := p.probs[word]; !ok {
		return nil, newUnknownWordError(word)
	}
	return &SuccessorGenerator{
		predictor: p,
		word:      word,
	}, nil
}

func (self *SuccessorGenerator) NextString() string {
	// the bound word was checked at construction, Predict cannot fail
	next, _ := self.predictor.Predict(self.word)
	self.lastValue = next
	return next
}

func (self *SuccessorGenerator) LastString() string {
	if len(self.lastValue) == 0 {
		self.lastValue = self.NextString()
	}
	return self.lastValue
}
