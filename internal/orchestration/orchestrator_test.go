package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/fibonacci"
	"github.com/agbru/fibdrv/internal/fibonacci/mocks"
)

// stubPresenter records what it was asked to present.
type stubPresenter struct {
	tables  int
	results []CalculationResult
}

func (p *stubPresenter) PresentComparisonTable([]CalculationResult, io.Writer) { p.tables++ }
func (p *stubPresenter) PresentResult(r CalculationResult, _ PresentationOptions, _ io.Writer) {
	p.results = append(p.results, r)
}

type stubErrorHandler struct{ code int }

func (h stubErrorHandler) HandleError(error, time.Duration, io.Writer) int { return h.code }

func TestExecuteCalculations_AgreeingCalculators(t *testing.T) {
	t.Parallel()
	calcs := []fibonacci.Calculator{fibonacci.FastDoubling{}, fibonacci.Iterative{}}

	results := ExecuteCalculations(context.Background(), calcs, 0, 40, NullProgressReporter{}, io.Discard)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Name, r.Err)
		}
		if len(r.Values) != 41 {
			t.Fatalf("%s: %d values, want 41", r.Name, len(r.Values))
		}
		if r.Values[40] != "102334155" {
			t.Errorf("%s: F(40) = %s, want 102334155", r.Name, r.Values[40])
		}
	}
}

func TestExecuteCalculations_ErrorStopsOneCalculator(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := mocks.NewMockCalculator(ctrl)
	failing.EXPECT().Name().Return("failing").AnyTimes()
	failing.EXPECT().Compute(int64(5)).Return("5", nil)
	failing.EXPECT().Compute(int64(6)).Return("", fibonacci.ErrInvalidIndex)

	calcs := []fibonacci.Calculator{failing, fibonacci.Iterative{}}
	results := ExecuteCalculations(context.Background(), calcs, 5, 10, NullProgressReporter{}, io.Discard)

	var calcErr apperrors.CalculationError
	if !errors.As(results[0].Err, &calcErr) || calcErr.Offset != 6 {
		t.Fatalf("failing result error = %v, want CalculationError at 6", results[0].Err)
	}
	if len(results[0].Values) != 1 {
		t.Errorf("failing result kept %d values, want 1", len(results[0].Values))
	}
	if results[1].Err != nil || len(results[1].Values) != 6 {
		t.Errorf("iterative result = %d values, %v", len(results[1].Values), results[1].Err)
	}
}

func TestExecuteCalculations_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := ExecuteCalculations(ctx, []fibonacci.Calculator{fibonacci.FastDoubling{}}, 0, fibonacci.MaxIndex, NullProgressReporter{}, io.Discard)
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", results[0].Err)
	}
}

func TestExecuteCalculations_ReportsProgress(t *testing.T) {
	t.Parallel()
	var (
		mu      sync.Mutex
		updates []ProgressUpdate
	)
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, _ int, _ io.Writer) {
		defer wg.Done()
		for u := range ch {
			mu.Lock()
			updates = append(updates, u)
			mu.Unlock()
		}
	})

	ExecuteCalculations(context.Background(), []fibonacci.Calculator{fibonacci.Iterative{}}, 0, 99, reporter, io.Discard)

	mu.Lock()
	defer mu.Unlock()
	if len(updates) == 0 {
		t.Fatal("no progress updates")
	}
	last := updates[len(updates)-1]
	if last.Done != 100 || last.Total != 100 {
		t.Errorf("last update = %+v, want 100/100", last)
	}
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	ok := []string{"0", "1", "1", "2"}
	bad := []string{"0", "1", "1", "3"}
	fail := errors.New("fail")

	tests := []struct {
		name       string
		results    []CalculationResult
		wantStatus int
		wantOut    string
	}{
		{
			name: "all agree",
			results: []CalculationResult{
				{Name: "A", Values: ok, Duration: 2 * time.Millisecond},
				{Name: "B", Values: ok, Duration: time.Millisecond},
			},
			wantStatus: apperrors.ExitSuccess,
			wantOut:    "Success",
		},
		{
			name: "mismatch",
			results: []CalculationResult{
				{Name: "A", Values: ok},
				{Name: "B", Values: bad},
			},
			wantStatus: apperrors.ExitErrorMismatch,
			wantOut:    "disagree on F(3)",
		},
		{
			name: "short range is a mismatch",
			results: []CalculationResult{
				{Name: "A", Values: ok},
				{Name: "B", Values: ok[:2]},
			},
			wantStatus: apperrors.ExitErrorMismatch,
			wantOut:    "disagree on F(2)",
		},
		{
			name: "all fail",
			results: []CalculationResult{
				{Name: "A", Err: fail},
				{Name: "B", Err: fail},
			},
			wantStatus: apperrors.ExitErrorGeneric,
			wantOut:    "Failure",
		},
		{
			name: "failures are ignored when one succeeds",
			results: []CalculationResult{
				{Name: "A", Err: fail},
				{Name: "B", Values: ok},
			},
			wantStatus: apperrors.ExitSuccess,
			wantOut:    "Success",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			presenter := &stubPresenter{}
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, presenter, stubErrorHandler{apperrors.ExitErrorGeneric}, &out)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.wantOut)
			}
			if presenter.tables != 1 {
				t.Errorf("comparison table presented %d times, want 1", presenter.tables)
			}
		})
	}
}

func TestAnalyzeComparisonResults_SortsFastestFirst(t *testing.T) {
	t.Parallel()
	results := []CalculationResult{
		{Name: "failed", Err: errors.New("x")},
		{Name: "slow", Values: []string{"0"}, Duration: time.Second},
		{Name: "fast", Values: []string{"0"}, Duration: time.Millisecond},
	}
	presenter := &stubPresenter{}
	AnalyzeComparisonResults(results, PresentationOptions{}, presenter, stubErrorHandler{}, io.Discard)

	got := []string{results[0].Name, results[1].Name, results[2].Name}
	want := []string{"fast", "slow", "failed"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if len(presenter.results) != 1 || presenter.results[0].Name != "fast" {
		t.Errorf("presented %v, want the fastest result", presenter.results)
	}
}
