// Package config defines the command-line configuration of fibdrv. Values
// come from flags, then from FIBDRV_-prefixed environment variables for any
// flag not given explicitly, then from defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/fibonacci"
)

// EnvPrefix prefixes every environment variable read by ParseConfig.
const EnvPrefix = "FIBDRV_"

// Modes selected with -mode.
const (
	ModeClient = "client"
	ModeServe  = "serve"
	ModeTUI    = "tui"
	ModeVerify = "verify"
)

// Defaults.
const (
	DefaultOffset     = 100
	DefaultWriteData  = "testing writer"
	DefaultTimingFile = "fibdrv_timings.txt"
	DefaultAddr       = ":8080"
	DefaultAlgo       = "fast"
	DefaultTimeout    = 5 * time.Second
	DefaultLogLevel   = "info"
	DefaultDeviceName = "/dev/fibonacci"
)

var (
	modes     = []string{ModeClient, ModeServe, ModeTUI, ModeVerify}
	logLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}
)

// AppConfig aggregates the application's configuration.
type AppConfig struct {
	// Mode is one of client, serve, tui or verify.
	Mode string
	// Offset is the upper bound of the exerciser sweep and of the verify
	// range. Values above fibonacci.MaxIndex are lowered to it.
	Offset int64
	// Writes is the number of no-op writes issued by the exerciser. A
	// negative value on the command line means Offset+1.
	Writes int
	// WriteData is the payload of each write.
	WriteData string
	// Quiet prints only "<offset> <value>" lines.
	Quiet bool
	// Verbose prints every verified value and a run summary.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Timing records the duration of every read into TimingFile.
	Timing bool
	// TimingFile receives one nanosecond count per line.
	TimingFile string
	// Addr is the listen address of the HTTP host.
	Addr string
	// Algo names the calculator backing the device, or "all" in verify mode.
	Algo string
	// Timeout bounds the graceful shutdown of the HTTP host.
	Timeout time.Duration
	// LogLevel is the zerolog level name.
	LogLevel string
	// DeviceName is the name printed by the exerciser and reported by the host.
	DeviceName string
}

// ParseConfig parses args into an AppConfig and validates it.
//
// Parameters:
//   - programName: Used in usage output.
//   - args: The arguments without the program name.
//   - errorWriter: Receives usage and flag errors.
//   - availableAlgos: The registered calculator names.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h, a parse error, or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Mode, "mode", ModeClient, "Run mode: "+strings.Join(modes, ", ")+".")
	fs.Int64Var(&config.Offset, "offset", DefaultOffset, "Largest offset to read (sweep and verify range).")
	fs.IntVar(&config.Writes, "writes", -1, "Number of writes before the sweep (-1 means offset+1).")
	fs.StringVar(&config.WriteData, "write-data", DefaultWriteData, "Payload of each write.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only offset and value.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Print every verified value and a run summary.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Timing, "timing", false, "Record read durations to the timing file.")
	fs.StringVar(&config.TimingFile, "timing-file", DefaultTimingFile, "Destination of read durations (ns, one per line).")
	fs.StringVar(&config.Addr, "addr", DefaultAddr, "Listen address in serve mode.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, "Calculator: "+strings.Join(availableAlgos, ", ")+" (or all with -mode verify).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Graceful shutdown limit in serve mode.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: "+strings.Join(logLevels, ", ")+".")
	fs.StringVar(&config.DeviceName, "device", DefaultDeviceName, "Device name.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if config.Offset > fibonacci.MaxIndex {
		config.Offset = fibonacci.MaxIndex
	}
	if config.Writes < 0 {
		config.Writes = int(config.Offset) + 1
	}

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableAlgos: The registered calculator names.
//
// Returns:
//   - error: An apperrors.ConfigError describing the first problem, or nil.
func (c AppConfig) Validate(availableAlgos []string) error {
	if !slices.Contains(modes, c.Mode) {
		return apperrors.NewConfigError("unknown mode %q (expected one of %s)", c.Mode, strings.Join(modes, ", "))
	}
	if c.Offset < 0 {
		return apperrors.NewConfigError("offset must be non-negative, got %d", c.Offset)
	}
	if c.Writes < 0 {
		return apperrors.NewConfigError("writes must be non-negative, got %d", c.Writes)
	}
	if c.Algo == "all" {
		if c.Mode != ModeVerify {
			return apperrors.NewConfigError("algorithm \"all\" is only valid with -mode %s", ModeVerify)
		}
	} else if !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if c.Mode == ModeServe && c.Addr == "" {
		return apperrors.NewConfigError("serve mode needs a listen address")
	}
	if c.Timing && c.TimingFile == "" {
		return apperrors.NewConfigError("timing needs a timing file")
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	return nil
}
