package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/orchestration"
	"github.com/agbru/fibdrv/internal/ui"
)

// These tests switch the global theme off and do not run in parallel.

func noColor(t *testing.T) {
	t.Helper()
	saved := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(saved) })
	ui.SetCurrentTheme(ui.NoColorTheme)
}

func TestPresentComparisonTable(t *testing.T) {
	noColor(t)
	results := []orchestration.CalculationResult{
		{Name: "Fast Doubling", Values: []string{"0", "1"}, Duration: 3 * time.Millisecond},
		{Name: "Iterative", Err: errors.New("boom")},
	}
	var out bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "Algorithm       Duration") {
		t.Errorf("header = %q", lines[1])
	}
	if !strings.Contains(lines[2], "3ms") || !strings.Contains(lines[2], "Success") {
		t.Errorf("success row = %q", lines[2])
	}
	if !strings.Contains(lines[3], "< 1µs") || !strings.Contains(lines[3], "Failure (boom)") {
		t.Errorf("failure row = %q", lines[3])
	}
}

func TestPresentResult(t *testing.T) {
	noColor(t)
	long := strings.Repeat("9", 100)
	result := orchestration.CalculationResult{Start: 5, Values: []string{"5", "8", long}}

	var out bytes.Buffer
	CLIResultPresenter{}.PresentResult(result, orchestration.PresentationOptions{}, &out)
	if !strings.Contains(out.String(), "F(5) through F(7)") {
		t.Errorf("missing range in %q", out.String())
	}
	if !strings.Contains(out.String(), "...") || !strings.Contains(out.String(), "(100 digits)") {
		t.Errorf("long value not truncated: %q", out.String())
	}

	out.Reset()
	CLIResultPresenter{}.PresentResult(result, orchestration.PresentationOptions{Verbose: true}, &out)
	if !strings.Contains(out.String(), "F(6) = 8\n") {
		t.Errorf("verbose output %q lacks F(6)", out.String())
	}

	out.Reset()
	CLIResultPresenter{}.PresentResult(orchestration.CalculationResult{}, orchestration.PresentationOptions{}, &out)
	if !strings.Contains(out.String(), "No values") {
		t.Errorf("empty result output = %q", out.String())
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	noColor(t)
	var out bytes.Buffer
	code := CLIResultPresenter{}.HandleError(errors.New("bad"), time.Second, &out)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if got := out.String(); got != "Error after 1s: bad\n" {
		t.Errorf("output = %q", got)
	}
}
