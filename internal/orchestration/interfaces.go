package orchestration

import (
	"io"
	"sync"
	"time"
)

// CalculationResult is the outcome of one calculator over an index range.
type CalculationResult struct {
	// Name is the calculator name (e.g., "Fast Doubling (O(log n), base-10)").
	Name string
	// Start is the index of Values[0].
	Start int64
	// Values holds F(Start), F(Start+1), ... in decimal. On failure it holds
	// the values computed before the error.
	Values []string
	// Duration is the time spent on the whole range.
	Duration time.Duration
	// Err is the first error the calculator returned.
	Err error
}

// PresentationOptions configures the verify report.
type PresentationOptions struct {
	Start   int64
	End     int64
	Verbose bool
}

// ProgressUpdate reports how many indices one calculator has finished.
type ProgressUpdate struct {
	CalculatorIndex int
	Done            int
	Total           int
}

// Value returns the normalized progress in [0, 1].
func (u ProgressUpdate) Value() float64 {
	if u.Total <= 0 {
		return 1
	}
	return float64(u.Done) / float64(u.Total)
}

// ProgressReporter displays progress while calculators run. DisplayProgress
// is started in its own goroutine, must consume progressChan until it is
// closed, and calls wg.Done before returning.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel silently.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders the verify report.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per calculator.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the agreed values after a successful check.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler turns a calculation error into an exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
