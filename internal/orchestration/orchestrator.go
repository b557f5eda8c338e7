package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/fibonacci"
)

// ProgressBufferMultiplier sizes the progress channel relative to the
// number of calculators.
const ProgressBufferMultiplier = 5

// progressStride is the number of indices between two progress updates.
const progressStride = 16

// ExecuteCalculations runs every calculator over the indices [start, end]
// concurrently and returns one result per calculator, in input order.
//
// A calculator stops at its first error; the others keep running. The
// context is checked before every index, so cancellation ends all of them
// with ctx.Err().
//
// Parameters:
//   - ctx: Cancellation for the whole run.
//   - calculators: The calculators to compare.
//   - start, end: The inclusive index range.
//   - progressReporter: Receives progress (use NullProgressReporter to discard).
//   - out: Where progress is displayed.
//
// Returns:
//   - []CalculationResult: One entry per calculator.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, start, end int64, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			results[idx] = runRange(ctx, calculator, idx, start, end, progressChan)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runRange(ctx context.Context, calc fibonacci.Calculator, idx int, start, end int64, progressChan chan<- ProgressUpdate) CalculationResult {
	res := CalculationResult{Name: calc.Name(), Start: start}
	total := 0
	if end >= start {
		total = int(end - start + 1)
	}
	res.Values = make([]string, 0, total)

	begin := time.Now()

	for k := start; k <= end; k++ {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		v, err := calc.Compute(k)
		if err != nil {
			res.Err = apperrors.CalculationError{Offset: k, Cause: err}
			break
		}
		res.Values = append(res.Values, v)
		if done := len(res.Values); done%progressStride == 0 || done == total {
			progressChan <- ProgressUpdate{CalculatorIndex: idx, Done: done, Total: total}
		}
	}
	res.Duration = time.Since(begin)
	return res
}

// AnalyzeComparisonResults sorts the results (successes first, fastest
// first), presents the comparison table and checks that every successful
// calculator produced the same values.
//
// Parameters:
//   - results: The results to analyze; sorted in place.
//   - opts: Report options.
//   - presenter: Renders the table and the agreed values.
//   - errHandler: Maps the failure to an exit code when nothing succeeded.
//   - out: The report destination.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch, or the code chosen by errHandler.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var reference *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if reference == nil {
			reference = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if reference == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No calculator completed the range.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if k, ok := firstDifference(*reference, res); ok {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree on F(%d).\n", reference.Name, res.Name, k)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*reference, opts, out)
	return apperrors.ExitSuccess
}

// firstDifference returns the first index at which a and b hold different
// values, or at which only one of them holds a value.
func firstDifference(a, b CalculationResult) (int64, bool) {
	if a.Start != b.Start {
		return min(a.Start, b.Start), true
	}
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if a.Values[i] != b.Values[i] {
			return a.Start + int64(i), true
		}
	}
	if len(a.Values) != len(b.Values) {
		return a.Start + int64(n), true
	}
	return 0, false
}
