package wordpredict

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// The name of the property for the file to load the successor table
	// from. When unset, a small built-in demo table is used.
	PropertyTableFile = "tablefile"
	// The target number of predictions to perform.
	PropertyOperationCount = "operationcount"
	// The default value of `PropertyOperationCount`
	PropertyOperationCountDefault = "1000"
	// The word the prediction chain starts from.
	PropertyStartWord = "startword"
	// The default value of `PropertyStartWord`
	PropertyStartWordDefault = "the"
	// The seed for the predictor's random source. When unset, a fresh
	// non-deterministic source is used.
	PropertySeed = "seed"
	// Whether to restart the chain from the start word when it reaches
	// a word that has no successor list. When false, the run stops there.
	PropertyResetOnUnknown = "resetonunknown"
	// The default value of `PropertyResetOnUnknown`
	PropertyResetOnUnknownDefault = "true"
	// The logging level. Options are "verbose", "debug", "info", "warn",
	// "error" and "quiet".
	PropertyLogLevel = "loglevel"
	// The default value of `PropertyLogLevel`
	PropertyLogLevelDefault = "info"
	// If set to the path of a file, the measurement summary is written
	// there instead of stdout.
	PropertyExportFile = "exportfile"
	// Whether to print periodic status lines to stderr while the
	// workload runs.
	PropertyStatus = "status"
	// The default value of `PropertyStatus`
	PropertyStatusDefault = "false"
	// The interval between status lines, in seconds.
	PropertyStatusInterval = "status.interval"
	// The default value of `PropertyStatusInterval`
	PropertyStatusIntervalDefault = "10"
	// The name of the measured predict operation in the summary output.
	MeasurementNamePredict = "PREDICT"
)

type Properties map[string]string

func NewProperties() Properties {
	return make(Properties)
}

func (self Properties) Add(key string, value string) {
	self[key] = value
}

func (self Properties) Get(key string) string {
	v, _ := self[key]
	return v
}

func (self Properties) GetDefault(key string, defaultValue string) string {
	if v, ok := self[key]; ok {
		return v
	}
	return defaultValue
}

func (self Properties) GetInt64Default(key string, defaultValue string) (int64, error) {
	return strconv.ParseInt(self.GetDefault(key, defaultValue), 0, 64)
}

func (self Properties) GetBoolDefault(key string, defaultValue string) (bool, error) {
	return strconv.ParseBool(self.GetDefault(key, defaultValue))
}

func (self Properties) Merge(other map[string]string) {
	for k, v := range other {
		self[k] = v
	}
}

// LoadProperties reads properties from a file with one `name=value` pair
// per line. Blank lines and lines starting with '#' are skipped.
func LoadProperties(file string) (Properties, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	props := NewProperties()
	scanner := bufio.NewScanner(f)
	lineCount := 0
	for scanner.Scan() {
		lineCount++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"invalid property in file %s line %d: %s", file, lineCount, line)
		}
		props.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

func OutputProperties(p Properties) {
	Debugf("***************** properties *****************")
	if p != nil {
		for k, v := range p {
			Debugf("\"%s\"=\"%s\"", k, v)
		}
	}
	Debugf("**********************************************")
}
