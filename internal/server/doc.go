// Package server hosts a Fibonacci device over HTTP. Every request to /fib
// opens the device, repositions it, reads the value and closes it again, so
// concurrent requests observe the device's exclusive-access rule directly:
// contention is answered with 503 rather than queued.
package server
