//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibdrv/internal/device"
	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/fibonacci"
)

// File is an open device as seen by the exerciser.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// Opener opens the device under test.
type Opener interface {
	Open() (File, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func() (File, error)

// Open calls f.
func (f OpenerFunc) Open() (File, error) { return f() }

// DeviceOpener opens handles on an in-process device.
func DeviceOpener(d *device.Device) Opener {
	return OpenerFunc(func() (File, error) {
		h, err := d.Open()
		if err != nil {
			return nil, err
		}
		return h, nil
	})
}

// Config controls one exerciser run.
type Config struct {
	// Name is the device name printed in every line.
	Name string
	// Offset is the upper bound of the sweep; offsets 0..Offset are read.
	Offset int64
	// Writes is the number of writes issued before the sweep.
	Writes int
	// WriteData is the payload of every write.
	WriteData []byte
	// Quiet prints "<offset> <value>" instead of the full sentence.
	Quiet bool
}

// Reading is the outcome of one read in the sweep.
type Reading struct {
	Offset  int64
	Value   string
	Elapsed time.Duration
}

// Report summarizes a run.
type Report struct {
	Writes   int
	Readings []Reading
}

// Timings returns the elapsed time of every reading, in sweep order.
func (r Report) Timings() []time.Duration {
	out := make([]time.Duration, len(r.Readings))
	for i, rd := range r.Readings {
		out[i] = rd.Elapsed
	}
	return out
}

// ProgressFunc is called after every read with the number of reads done and
// the total number planned.
type ProgressFunc func(done, total int)

// Exerciser drives one device through writes and read sweeps.
type Exerciser struct {
	opener   Opener
	cfg      Config
	out      io.Writer
	progress ProgressFunc
}

// Option configures an Exerciser.
type Option func(*Exerciser)

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Exerciser) { e.progress = fn }
}

// New creates an exerciser printing to out.
func New(opener Opener, cfg Config, out io.Writer, opts ...Option) *Exerciser {
	if cfg.Name == "" {
		cfg.Name = device.DefaultName
	}
	e := &Exerciser{opener: opener, cfg: cfg, out: out, progress: func(int, int) {}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run opens the device, performs the writes, reads every offset from 0 up to
// Offset and back down to 0, then closes the device. A busy device fails
// immediately with an error wrapping device.ErrBusy. Cancellation of ctx is
// checked between operations.
func (e *Exerciser) Run(ctx context.Context) (Report, error) {
	var report Report

	f, err := e.opener.Open()
	if err != nil {
		return report, fmt.Errorf("open %s: %w", e.cfg.Name, err)
	}

	report, err = e.exercise(ctx, f)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close %s: %w", e.cfg.Name, cerr)
	}
	return report, err
}

func (e *Exerciser) exercise(ctx context.Context, f File) (Report, error) {
	var report Report

	for i := 0; i < e.cfg.Writes; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		n, err := f.Write(e.cfg.WriteData)
		if err != nil {
			return report, fmt.Errorf("write %s: %w", e.cfg.Name, err)
		}
		report.Writes++
		if !e.cfg.Quiet {
			fmt.Fprintf(e.out, "Writing to %s, returned the sequence %d\n", e.cfg.Name, n)
		}
	}

	offsets := sweep(e.cfg.Offset)
	report.Readings = make([]Reading, 0, len(offsets))
	buf := make([]byte, fibonacci.Capacity+1)
	for done, off := range offsets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		rd, err := e.readAt(f, off, buf)
		if err != nil {
			return report, err
		}
		report.Readings = append(report.Readings, rd)
		e.print(rd)
		e.progress(done+1, len(offsets))
	}
	return report, nil
}

func (e *Exerciser) readAt(f File, off int64, buf []byte) (Reading, error) {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return Reading{}, apperrors.CalculationError{Offset: off, Cause: err}
	}
	start := time.Now()
	n, err := f.Read(buf)
	elapsed := time.Since(start)
	if err != nil && err != io.EOF {
		return Reading{}, apperrors.CalculationError{Offset: off, Cause: err}
	}
	return Reading{Offset: off, Value: string(buf[:n]), Elapsed: elapsed}, nil
}

func (e *Exerciser) print(rd Reading) {
	if e.cfg.Quiet {
		fmt.Fprintf(e.out, "%d %s\n", rd.Offset, rd.Value)
		return
	}
	fmt.Fprintf(e.out, "Reading from %s at offset %d, returned the sequence %s.\n", e.cfg.Name, rd.Offset, rd.Value)
}

// sweep lists 0..max followed by max..0. A negative max yields no offsets.
func sweep(max int64) []int64 {
	if max < 0 {
		return nil
	}
	out := make([]int64, 0, 2*(max+1))
	for i := int64(0); i <= max; i++ {
		out = append(out, i)
	}
	for i := max; i >= 0; i-- {
		out = append(out, i)
	}
	return out
}
