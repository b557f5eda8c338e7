//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibdrv/internal/orchestration"
)

const (
	// ProgressRefreshRate is the spinner frame interval and the refresh
	// period of the verify progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so that progress display can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix replaces the suffix under the spinner's lock; the animation
// goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with an aggregated progress bar while the
// verify run is in progress. It returns once progressChan is closed.
//
// Parameters:
//   - wg: Marked done on return.
//   - progressChan: Updates from the calculators.
//   - numCalculators: The number of calculators reporting.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix("Verifying", 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressSuffix("Verifying", 1))
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix("Verifying", agg.CalculateAverage()))
		}
	}
}

// SweepProgress drives a spinner from the exerciser's progress callback.
type SweepProgress struct {
	s Spinner
}

// NewSweepProgress starts a spinner on out.
func NewSweepProgress(out io.Writer) *SweepProgress {
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix("Sweeping", 0))
	s.Start()
	return &SweepProgress{s: s}
}

// Update has the signature of client.ProgressFunc.
func (p *SweepProgress) Update(done, total int) {
	v := 1.0
	if total > 0 {
		v = float64(done) / float64(total)
	}
	p.s.UpdateSuffix(progressSuffix("Sweeping", v))
}

// Stop halts the spinner.
func (p *SweepProgress) Stop() { p.s.Stop() }

func progressSuffix(label string, progress float64) string {
	return fmt.Sprintf(" %s %s %3.0f%%", label, progressBar(progress, ProgressBarWidth), clampProgress(progress)*100)
}

func clampProgress(progress float64) float64 {
	if progress > 1.0 {
		return 1.0
	}
	if progress < 0.0 {
		return 0.0
	}
	return progress
}

// progressBar renders progress (0.0 to 1.0) as a bar of length characters.
func progressBar(progress float64, length int) string {
	count := int(clampProgress(progress) * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
