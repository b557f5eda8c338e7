package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fibdrv from the module root, two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "fibdrv"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibdrv")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibdrv: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "Quiet sweep",
			args:     []string{"-offset", "10", "-quiet"},
			wantOut:  "10 55",
			wantCode: 0,
		},
		{
			name:     "Default sweep",
			args:     []string{"-offset", "3"},
			wantOut:  "Reading from /dev/fibonacci at offset 3, returned the sequence 2.",
			wantCode: 0,
		},
		{
			name:     "Writes",
			args:     []string{"-offset", "1", "-writes", "1"},
			wantOut:  "Writing to /dev/fibonacci, returned the sequence 1",
			wantCode: 0,
		},
		{
			name:     "Largest offset",
			args:     []string{"-offset", "9999", "-quiet", "-writes", "0"},
			wantOut:  "613 ",
			wantCode: 0,
		},
		{
			name:     "Verify all",
			args:     []string{"-mode", "verify", "-algo", "all", "-offset", "300"},
			wantOut:  "Global Status: Success",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version flag",
			args:     []string{"--version"},
			wantOut:  "fibdrv",
			wantCode: 0,
		},
		{
			name:     "Unknown mode",
			args:     []string{"-mode", "nope"},
			wantOut:  "unknown mode",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running binary: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
