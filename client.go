package wordpredict

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/hhkbp2/go-strftime"
	"github.com/markovian/wordpredict/predictor"
)

type Client interface {
	Main()
}

// Runner drives a prediction workload against a Predictor and reports
// latency and word frequency measurements.
type Runner struct {
	args *Arguments
}

func NewRunner(args *Arguments) *Runner {
	return &Runner{
		args: args,
	}
}

func (self *Runner) Main() {
	props := self.args.Properties
	level := props.GetDefault(PropertyLogLevel, PropertyLogLevelDefault)
	if err := SetLogLevel(level); err != nil {
		ExitOnError(err.Error())
	}
	OutputProperties(props)

	probs, err := loadTable(props)
	if err != nil {
		ExitOnError("fail to load successor table, error: %s", err)
	}
	random, err := makeRandom(props)
	if err != nil {
		ExitOnError("fail to create random source, error: %s", err)
	}
	p, err := predictor.NewPredictor(probs, random)
	if err != nil {
		ExitOnError("fail to create predictor, error: %s", err)
	}

	opCount, err := props.GetInt64Default(
		PropertyOperationCount, PropertyOperationCountDefault)
	if err != nil {
		ExitOnError("invalid %s, error: %s", PropertyOperationCount, err)
	}
	resetOnUnknown, err := props.GetBoolDefault(
		PropertyResetOnUnknown, PropertyResetOnUnknownDefault)
	if err != nil {
		ExitOnError("invalid %s, error: %s", PropertyResetOnUnknown, err)
	}
	startWord := props.GetDefault(PropertyStartWord, PropertyStartWordDefault)
	status, err := props.GetBoolDefault(PropertyStatus, PropertyStatusDefault)
	if err != nil {
		ExitOnError("invalid %s, error: %s", PropertyStatus, err)
	}
	statusIntervalSecond, err := props.GetInt64Default(
		PropertyStatusInterval, PropertyStatusIntervalDefault)
	if err != nil {
		ExitOnError("invalid %s, error: %s", PropertyStatusInterval, err)
	}
	statusInterval := time.Duration(statusIntervalSecond) * time.Second

	latency := NewOneMeasurement(MeasurementNamePredict)
	frequency := NewFrequencyMeasurement("FREQUENCY")
	current := startWord
	lastStatus := time.Now()
	for i := int64(0); i < opCount; i++ {
		begin := time.Now()
		next, err := p.Predict(current)
		latency.Measure(time.Since(begin))
		if status && time.Since(lastStatus) >= statusInterval {
			reportStatus(i+1, latency)
			lastStatus = time.Now()
		}
		if err != nil {
			latency.ReportStatus(StatusUnknownWord)
			Debugf("no successor list for word %q", current)
			if !resetOnUnknown {
				Warnf("chain stopped at word %q after %d operations", current, i+1)
				break
			}
			current = startWord
			continue
		}
		latency.ReportStatus(StatusOK)
		frequency.Count(next)
		current = next
	}

	Infof("%s", latency.GetSummary())
	if err := exportMeasurements(props, latency, frequency); err != nil {
		ExitOnError("fail to export measurements, error: %s", err)
	}
}

func reportStatus(completed int64, latency *OneMeasurement) {
	EPrintf("%s %d operations; %s",
		strftime.Format(timestampFormat, time.Now()), completed,
		latency.GetSummary())
}

func loadTable(props Properties) (predictor.DistributionTable, error) {
	if file := props.Get(PropertyTableFile); len(file) > 0 {
		return predictor.NewTableFromFile(file)
	}
	Infof("no %s given, using the built-in demo table", PropertyTableFile)
	return demoTable()
}

// demoTable builds a small closed word chain so a run without a table file
// has something to walk.
func demoTable() (predictor.DistributionTable, error) {
	b := predictor.NewTableBuilder()
	b.Add("the", 1, "cat")
	b.Add("the", 4, "dog")
	b.Add("the", 5, "lizard")
	b.Add("cat", 6, "sat")
	b.Add("cat", 4, "ate")
	b.Add("dog", 5, "ran")
	b.Add("dog", 5, "sat")
	b.Add("lizard", 10, "basked")
	b.Add("sat", 10, "near")
	b.Add("ate", 10, "near")
	b.Add("ran", 10, "near")
	b.Add("basked", 10, "near")
	b.Add("near", 10, "the")
	return b.Build()
}

func makeRandom(props Properties) (*rand.Rand, error) {
	if s := props.Get(PropertySeed); len(s) > 0 {
		seed, err := props.GetInt64Default(PropertySeed, "")
		if err != nil {
			return nil, err
		}
		return rand.New(rand.NewSource(seed)), nil
	}
	return predictor.NewDefaultRandom(), nil
}

func exportMeasurements(props Properties, latency *OneMeasurement,
	frequency *FrequencyMeasurement) error {
	out := io.WriteCloser(os.Stdout)
	closeOut := false
	if file := props.Get(PropertyExportFile); len(file) > 0 {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		out = f
		closeOut = true
	}
	exporter := NewTextMeasurementExporter(out)
	if closeOut {
		defer exporter.Close()
	}
	if err := latency.ExportMeasurements(exporter); err != nil {
		return err
	}
	return frequency.ExportMeasurements(exporter)
}
