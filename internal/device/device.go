package device

import (
	"sync/atomic"
	"time"
)

// DefaultName is the device name used when none is configured.
const DefaultName = "/dev/fibonacci"

// Device hosts a single Session and hands out at most one Handle at a time.
type Device struct {
	name     string
	session  *Session
	observer Observer
}

// Option configures a Device.
type Option func(*Device)

// WithObserver attaches an Observer notified of every lifecycle event.
func WithObserver(o Observer) Option {
	return func(d *Device) { d.observer = o }
}

// WithSession makes the device host an existing session.
func WithSession(s *Session) Option {
	return func(d *Device) { d.session = s }
}

// New creates a device named name. Without WithSession it owns a fresh
// Fast Doubling session.
func New(name string, opts ...Option) *Device {
	if name == "" {
		name = DefaultName
	}
	d := &Device{name: name, observer: NopObserver{}}
	for _, opt := range opts {
		opt(d)
	}
	if d.session == nil {
		d.session = NewSession()
	}
	return d
}

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// MaxIndex returns the largest reachable position.
func (d *Device) MaxIndex() int64 { return d.session.MaxIndex() }

// Open acquires the session and returns a handle to it. It never blocks: if
// another handle is open it fails with ErrBusy.
func (d *Device) Open() (*Handle, error) {
	if err := d.session.Acquire(); err != nil {
		d.observer.OnBusy(d.name)
		return nil, err
	}
	d.observer.OnOpen(d.name)
	return &Handle{dev: d}, nil
}

// Handle is an open, exclusive view of a Device. It is not safe for
// concurrent use; the holder is expected to drive it from one goroutine.
type Handle struct {
	dev    *Device
	closed atomic.Bool
}

// Read computes the value at the current position and copies its decimal
// text into p. The length of p does not influence the computation; if p is
// shorter than the text, the text is truncated. Reads never advance the
// position, so every Read at an unchanged position returns the same bytes.
func (h *Handle) Read(p []byte) (int, error) {
	text, err := h.query(len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, text), nil
}

// Value returns the decimal text of F(position).
func (h *Handle) Value() (string, error) {
	return h.query(0)
}

func (h *Handle) query(size int) (string, error) {
	if h.closed.Load() {
		return "", ErrNotHeld
	}
	s := h.dev.session
	pos := s.Position()
	start := time.Now()
	text, err := s.Query(size)
	h.dev.observer.OnRead(h.dev.name, pos, time.Since(start), err)
	return text, err
}

// Write discards p and reports a count of 1, whatever p holds.
func (h *Handle) Write(p []byte) (int, error) {
	if h.closed.Load() {
		return 0, ErrNotHeld
	}
	n, err := h.dev.session.Submit(p)
	if err == nil {
		h.dev.observer.OnWrite(h.dev.name, n)
	}
	return n, err
}

// Seek repositions the handle. whence is io.SeekStart, io.SeekCurrent or
// io.SeekEnd; io.SeekEnd sets the position to MaxIndex - offset. The result
// is clamped to [0, MaxIndex] and returned.
func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if h.closed.Load() {
		return 0, ErrNotHeld
	}
	w, err := whenceFromIO(whence)
	if err != nil {
		return h.dev.session.Position(), err
	}
	return h.SeekMode(offset, w)
}

// SeekMode is Seek with an explicit Whence.
func (h *Handle) SeekMode(offset int64, whence Whence) (int64, error) {
	if h.closed.Load() {
		return 0, ErrNotHeld
	}
	pos, err := h.dev.session.Seek(offset, whence)
	if err == nil {
		h.dev.observer.OnSeek(h.dev.name, pos)
	}
	return pos, err
}

// Position returns the current position.
func (h *Handle) Position() int64 { return h.dev.session.Position() }

// MaxIndex returns the device's largest position.
func (h *Handle) MaxIndex() int64 { return h.dev.MaxIndex() }

// Close releases the session. A handle can be closed once; a second Close
// returns ErrReleaseWithoutAcquire without touching a session that may by now
// belong to another handle.
func (h *Handle) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return ErrReleaseWithoutAcquire
	}
	if err := h.dev.session.Release(); err != nil {
		return err
	}
	h.dev.observer.OnRelease(h.dev.name)
	return nil
}
