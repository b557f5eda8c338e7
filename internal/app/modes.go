package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/fibdrv/internal/cli"
	"github.com/agbru/fibdrv/internal/client"
	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/logging"
	"github.com/agbru/fibdrv/internal/orchestration"
	"github.com/agbru/fibdrv/internal/server"
	"github.com/agbru/fibdrv/internal/tui"
	"github.com/agbru/fibdrv/internal/ui"
)

// runClient exercises the device: writes, then a read sweep up and down.
func (a *Application) runClient(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	presenter := cli.CLIResultPresenter{}
	dev, err := a.newDevice()
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}

	var opts []client.Option
	var progress *cli.SweepProgress
	if !a.Config.Quiet && ui.IsTerminal(a.ErrWriter) {
		progress = cli.NewSweepProgress(a.ErrWriter)
		opts = append(opts, client.WithProgress(progress.Update))
	}

	cfg := client.Config{
		Name:      dev.Name(),
		Offset:    a.Config.Offset,
		Writes:    a.Config.Writes,
		WriteData: []byte(a.Config.WriteData),
		Quiet:     a.Config.Quiet,
	}
	start := time.Now()
	report, err := client.New(client.DeviceOpener(dev), cfg, out, opts...).Run(ctx)
	elapsed := time.Since(start)
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		return presenter.HandleError(err, elapsed, a.ErrWriter)
	}

	if a.Config.Timing {
		if err := cli.WriteTimingsFile(a.Config.TimingFile, report.Timings()); err != nil {
			return presenter.HandleError(err, elapsed, a.ErrWriter)
		}
		if !a.Config.Quiet {
			cli.DisplayTimingsSaved(out, a.Config.TimingFile, len(report.Readings))
		}
	}
	if a.Config.Verbose {
		cli.DisplayRunSummary(out, dev.Name(), report, elapsed)
	}
	return apperrors.ExitSuccess
}

// runServe hosts the device over HTTP until a signal arrives.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	metrics := server.NewMetrics()
	dev, err := a.newDevice(metrics)
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}

	srv := server.NewServer(dev, a.Config,
		server.WithLogger(a.Logger),
		server.WithMetrics(metrics),
	)
	start := time.Now()
	if err := srv.Run(ctx); err != nil {
		a.Logger.Error("server stopped", err, logging.String("addr", a.Config.Addr))
		return cli.CLIResultPresenter{}.HandleError(err, time.Since(start), a.ErrWriter)
	}
	return apperrors.ExitSuccess
}

// runTUI opens the device and hands the handle to the browser.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	presenter := cli.CLIResultPresenter{}
	dev, err := a.newDevice()
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	h, err := dev.Open()
	if err != nil {
		return presenter.HandleError(err, 0, a.ErrWriter)
	}
	return tui.Run(ctx, h, dev.Name(), Version)
}

// runVerify cross-checks the selected calculators over [0, Offset].
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculators := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculators) == 0 {
		return cli.CLIResultPresenter{}.HandleError(
			apperrors.NewConfigError("no calculator matches %q", a.Config.Algo), 0, a.ErrWriter)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := a.ErrWriter
	if a.Config.Quiet || !ui.IsTerminal(a.ErrWriter) {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	a.Logger.Debug("verifying",
		logging.Int("calculators", len(calculators)),
		logging.Int64("end", a.Config.Offset))
	results := orchestration.ExecuteCalculations(ctx, calculators, 0, a.Config.Offset, reporter, progressOut)

	presenter := cli.CLIResultPresenter{}
	opts := orchestration.PresentationOptions{Start: 0, End: a.Config.Offset, Verbose: a.Config.Verbose}
	return orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
}
