package predictor

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// NewTableFromFile loads a DistributionTable from a tab-separated file with
// one entry per line:
//
//	word<TAB>successor<TAB>cumulativeProbability
//
// The lines of one word must be contiguous and in list order. Blank lines
// and lines starting with '#' are skipped. The loaded table is validated
// before it is returned.
func NewTableFromFile(file string) (DistributionTable, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	probs := make(DistributionTable)
	scanner := bufio.NewScanner(f)
	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, NewErrorf(
				"invalid format for table file %s line %d", file, lineCount)
		}
		p, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, NewErrorf(
				"invalid probability in table file %s line %d: %s",
				file, lineCount, err)
		}
		word := parts[0]
		probs[word] = append(probs[word], WordProbability{
			Word:                  parts[1],
			CumulativeProbability: p,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := Validate(probs); err != nil {
		return nil, err
	}
	return probs, nil
}
