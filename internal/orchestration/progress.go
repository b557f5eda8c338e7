package orchestration

// ProgressAggregator averages the progress of several calculators.
type ProgressAggregator struct {
	progresses []float64
}

// NewProgressAggregator tracks numCalculators calculators. It returns nil
// when numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{progresses: make([]float64, numCalculators)}
}

// Update records an update and returns the new average. Updates for an
// unknown calculator index are ignored.
func (a *ProgressAggregator) Update(update ProgressUpdate) float64 {
	if i := update.CalculatorIndex; i >= 0 && i < len(a.progresses) {
		a.progresses[i] = update.Value()
	}
	return a.CalculateAverage()
}

// CalculateAverage returns the mean progress across calculators.
func (a *ProgressAggregator) CalculateAverage() float64 {
	var total float64
	for _, p := range a.progresses {
		total += p
	}
	return total / float64(len(a.progresses))
}

// NumCalculators returns the number of calculators being tracked.
func (a *ProgressAggregator) NumCalculators() int { return len(a.progresses) }

// IsMultiCalculator reports whether more than one calculator is tracked.
func (a *ProgressAggregator) IsMultiCalculator() bool { return len(a.progresses) > 1 }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
