package predictor

import (
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestNewTableFromFile(t *testing.T) {
	filename := "successor_table.data"
	probs, err := NewTableFromFile(filename)
	require.Nil(t, err)
	require.Equal(t, 2, len(probs))
	require.Equal(t, testTable()["the"], probs["the"])
	require.Equal(t, testTable()["cat"], probs["cat"])
}

func TestNewTableFromFileMissing(t *testing.T) {
	_, err := NewTableFromFile("no_such_file.data")
	require.NotNil(t, err)
}
