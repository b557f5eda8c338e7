package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/agbru/fibdrv/internal/config"
	"github.com/agbru/fibdrv/internal/device"
	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/fibonacci"
	"github.com/agbru/fibdrv/internal/logging"
	"github.com/agbru/fibdrv/internal/ui"
)

// Application represents the fibdrv application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the console logger built from the -log-level flag.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	programName := "fibdrv"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger().WithLevel(logging.ParseLevel(cfg.LogLevel))
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	switch a.Config.Mode {
	case config.ModeServe:
		return a.runServe(ctx)
	case config.ModeTUI:
		return a.runTUI(ctx)
	case config.ModeVerify:
		return a.runVerify(ctx, out)
	default:
		return a.runClient(ctx, out)
	}
}

// newDevice builds the device for the configured algorithm. Every event is
// logged; extra observers are notified after the logger.
func (a *Application) newDevice(extra ...device.Observer) (*device.Device, error) {
	calc, err := a.Factory.Get(a.Config.Algo)
	if err != nil {
		return nil, apperrors.NewConfigError("unknown algorithm %q", a.Config.Algo)
	}
	observers := append([]device.Observer{device.NewLoggingObserver(a.Logger)}, extra...)
	return device.New(a.Config.DeviceName,
		device.WithSession(device.NewSession(device.WithCalculator(calc))),
		device.WithObserver(device.Observers(observers...)),
	), nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// SetupExitCode maps an error returned by New to an exit code. ParseConfig
// has already reported the error; a help request exits successfully.
func SetupExitCode(err error) int {
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	default:
		return apperrors.ExitErrorConfig
	}
}
