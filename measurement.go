package wordpredict

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/hhkbp2/go-strftime"
)

type StatusType uint8

const (
	StatusOK StatusType = 1 + iota
	StatusUnknownWord
)

func (self StatusType) String() string {
	switch self {
	case StatusOK:
		return "OK"
	case StatusUnknownWord:
		return "UNKNOWN_WORD"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Used to export the collected measurements into a useful format, for
// example human readable text.
type MeasurementExporter interface {
	// Write a measurement to the exported format. v should be int64,
	// float64 or string.
	Write(metric string, measurement string, v interface{}) error
	io.Closer
}

type TextMeasurementExporter struct {
	w io.WriteCloser
}

func NewTextMeasurementExporter(w io.WriteCloser) *TextMeasurementExporter {
	return &TextMeasurementExporter{
		w: w,
	}
}

func (self *TextMeasurementExporter) Write(metric string, measurement string, v interface{}) error {
	_, err := fmt.Fprintf(self.w, "[%s], %s, %v\n", metric, measurement, v)
	return err
}

func (self *TextMeasurementExporter) Close() error {
	return self.w.Close()
}

const (
	timestampFormat = "%Y-%m-%d %H:%M:%S"
	// predict is in-memory work, one second of latency is far beyond any
	// value the histogram needs to resolve
	maxLatencyMicrosecond     = int64(time.Second / time.Microsecond)
	numberOfSignificantDigits = 3
)

// OneMeasurement collects the latencies and return statuses of a single
// measured operation and reports them when requested.
type OneMeasurement struct {
	name        string
	lock        *sync.Mutex
	histogram   *hdrhistogram.Histogram
	startTime   time.Time
	returnCodes map[StatusType]uint32
}

func NewOneMeasurement(name string) *OneMeasurement {
	return &OneMeasurement{
		name:        name,
		lock:        &sync.Mutex{},
		histogram:   hdrhistogram.New(0, maxLatencyMicrosecond, numberOfSignificantDigits),
		startTime:   time.Now(),
		returnCodes: make(map[StatusType]uint32),
	}
}

func (self *OneMeasurement) GetName() string {
	return self.name
}

// Measure records the latency of one completed operation.
func (self *OneMeasurement) Measure(latency time.Duration) {
	self.lock.Lock()
	defer self.lock.Unlock()
	microsecond := int64(latency / time.Microsecond)
	if err := self.histogram.RecordValue(microsecond); err != nil {
		Errorf("fail to record latency %d us: %s", microsecond, err)
	}
}

// ReportStatus counts a return status of one operation.
func (self *OneMeasurement) ReportStatus(status StatusType) {
	self.lock.Lock()
	defer self.lock.Unlock()
	count, _ := self.returnCodes[status]
	self.returnCodes[status] = count + 1
}

// GetSummary returns a one line summary of the measurements so far.
func (self *OneMeasurement) GetSummary() string {
	self.lock.Lock()
	defer self.lock.Unlock()
	return fmt.Sprintf("[%s: Count=%d, Max=%d, Min=%d, Avg=%.2f]",
		self.name, self.histogram.TotalCount(), self.histogram.Max(),
		self.histogram.Min(), self.histogram.Mean())
}

// ExportMeasurements writes the accumulated statistics through exporter.
func (self *OneMeasurement) ExportMeasurements(exporter MeasurementExporter) error {
	self.lock.Lock()
	defer self.lock.Unlock()
	writes := []struct {
		measurement string
		v           interface{}
	}{
		{"StartTime", strftime.Format(timestampFormat, self.startTime)},
		{"EndTime", strftime.Format(timestampFormat, time.Now())},
		{"Operations", self.histogram.TotalCount()},
		{"AverageLatency(us)", self.histogram.Mean()},
		{"MinLatency(us)", self.histogram.Min()},
		{"MaxLatency(us)", self.histogram.Max()},
		{"95thPercentileLatency(us)", self.histogram.ValueAtQuantile(95)},
		{"99thPercentileLatency(us)", self.histogram.ValueAtQuantile(99)},
	}
	for _, w := range writes {
		if err := exporter.Write(self.name, w.measurement, w.v); err != nil {
			return err
		}
	}
	for status, count := range self.returnCodes {
		err := exporter.Write(self.name, fmt.Sprintf("Return=%s", status), count)
		if err != nil {
			return err
		}
	}
	return nil
}

// FrequencyMeasurement counts how often each predicted word is returned.
type FrequencyMeasurement struct {
	name   string
	lock   *sync.Mutex
	counts map[string]int64
	total  int64
}

func NewFrequencyMeasurement(name string) *FrequencyMeasurement {
	return &FrequencyMeasurement{
		name:   name,
		lock:   &sync.Mutex{},
		counts: make(map[string]int64),
	}
}

// Count records one occurrence of word.
func (self *FrequencyMeasurement) Count(word string) {
	self.lock.Lock()
	defer self.lock.Unlock()
	self.counts[word]++
	self.total++
}

func (self *FrequencyMeasurement) Total() int64 {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.total
}

// ExportMeasurements writes per-word counts and shares, most frequent
// first, words of equal count in lexical order.
func (self *FrequencyMeasurement) ExportMeasurements(exporter MeasurementExporter) error {
	self.lock.Lock()
	defer self.lock.Unlock()
	words := make([]string, 0, len(self.counts))
	for word := range self.counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if self.counts[words[i]] != self.counts[words[j]] {
			return self.counts[words[i]] > self.counts[words[j]]
		}
		return words[i] < words[j]
	})
	for _, word := range words {
		count := self.counts[word]
		share := float64(count) / float64(self.total)
		v := fmt.Sprintf("%d (%.2f%%)", count, share*100)
		if err := exporter.Write(self.name, word, v); err != nil {
			return err
		}
	}
	return nil
}
