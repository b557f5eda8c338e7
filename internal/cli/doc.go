// Package cli renders the line-oriented output of fibdrv: progress
// spinners for the exerciser sweep and the verify run, the verify report,
// and the timing file.
package cli
