// Package device exposes the Fibonacci engine as a single-consumer,
// offset-addressed resource.
//
// A Session is the exclusive-access state: a Free/Locked flag and a position
// clamped to [0, fibonacci.MaxIndex]. Acquire is a non-blocking try-lock; a
// second Acquire fails immediately with ErrBusy. While the session is held,
// Seek moves the position and Query computes F(position) from scratch.
//
// A Device wraps one Session with the hooks a host drives: Open returns a
// Handle implementing Read, Write, Seek and Close. Seek uses the io.Seek*
// constants, with io.SeekEnd meaning "MaxIndex minus offset" rather than an
// offset from the end.
package device
