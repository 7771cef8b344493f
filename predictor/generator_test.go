package predictor

import (
	"errors"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestSuccessorGenerator(t *testing.T) {
	p, err := NewPredictor(testTable(), NewDefaultRandom())
	require.Nil(t, err)
	var g Generator
	sg, err := NewSuccessorGenerator(p, "the")
	require.Nil(t, err)
	g = sg
	valid := map[string]bool{
		"cat":    true,
		"dog":    true,
		"lizard": true,
	}
	total := 10
	for i := 0; i < total; i++ {
		n := g.NextString()
		require.True(t, valid[n])
		require.Equal(t, n, g.LastString())
	}
}

func TestSuccessorGeneratorLastBeforeNext(t *testing.T) {
	p, err := NewPredictor(testTable(), NewDefaultRandom())
	require.Nil(t, err)
	sg, err := NewSuccessorGenerator(p, "cat")
	require.Nil(t, err)
	last := sg.LastString()
	require.NotEqual(t, "", last)
	require.Equal(t, last, sg.LastString())
}

func TestSuccessorGeneratorUnknownWord(t *testing.T) {
	p, err := NewPredictor(testTable(), NewDefaultRandom())
	require.Nil(t, err)
	_, err = NewSuccessorGenerator(p, "dog")
	require.True(t, errors.Is(err, ErrUnknownWord))
}
