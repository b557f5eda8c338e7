package device

import (
	"time"

	"github.com/agbru/fibdrv/internal/logging"
)

// Observer receives device lifecycle events. Implementations must be safe
// for concurrent use: OnBusy may fire while another goroutine holds the
// device.
type Observer interface {
	OnOpen(device string)
	OnBusy(device string)
	OnRelease(device string)
	OnSeek(device string, pos int64)
	OnRead(device string, pos int64, elapsed time.Duration, err error)
	OnWrite(device string, n int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnOpen(string)                              {}
func (NopObserver) OnBusy(string)                              {}
func (NopObserver) OnRelease(string)                           {}
func (NopObserver) OnSeek(string, int64)                       {}
func (NopObserver) OnRead(string, int64, time.Duration, error) {}
func (NopObserver) OnWrite(string, int)                        {}

// LoggingObserver writes device events to a logging.Logger. Seeks, reads and
// writes are logged at debug level; contention and failed reads stand out.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver creates an observer logging to logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

func (o *LoggingObserver) OnOpen(device string) {
	o.logger.Debug("device opened", logging.String("device", device))
}

func (o *LoggingObserver) OnBusy(device string) {
	o.logger.Info("device is in use", logging.String("device", device))
}

func (o *LoggingObserver) OnRelease(device string) {
	o.logger.Debug("device released", logging.String("device", device))
}

func (o *LoggingObserver) OnSeek(device string, pos int64) {
	o.logger.Debug("seek", logging.String("device", device), logging.Int64("position", pos))
}

func (o *LoggingObserver) OnRead(device string, pos int64, elapsed time.Duration, err error) {
	if err != nil {
		o.logger.Error("read failed", err, logging.String("device", device), logging.Int64("position", pos))
		return
	}
	o.logger.Debug("read", logging.String("device", device), logging.Int64("position", pos), logging.Duration("elapsed", elapsed))
}

func (o *LoggingObserver) OnWrite(device string, n int) {
	o.logger.Debug("write ignored", logging.String("device", device), logging.Int("count", n))
}

// Observers fans events out to several observers in order.
func Observers(obs ...Observer) Observer {
	return multiObserver(obs)
}

type multiObserver []Observer

func (m multiObserver) OnOpen(device string) {
	for _, o := range m {
		o.OnOpen(device)
	}
}

func (m multiObserver) OnBusy(device string) {
	for _, o := range m {
		o.OnBusy(device)
	}
}

func (m multiObserver) OnRelease(device string) {
	for _, o := range m {
		o.OnRelease(device)
	}
}

func (m multiObserver) OnSeek(device string, pos int64) {
	for _, o := range m {
		o.OnSeek(device, pos)
	}
}

func (m multiObserver) OnRead(device string, pos int64, elapsed time.Duration, err error) {
	for _, o := range m {
		o.OnRead(device, pos, elapsed, err)
	}
}

func (m multiObserver) OnWrite(device string, n int) {
	for _, o := range m {
		o.OnWrite(device, n)
	}
}
