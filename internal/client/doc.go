// Package client exercises a Fibonacci device the way a user-space test
// program would: it opens the device, issues no-op writes, then sweeps the
// offsets up and back down, reading the value at every position.
package client
