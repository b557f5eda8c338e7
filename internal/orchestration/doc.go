// Package orchestration cross-checks Fibonacci calculators. It runs every
// selected calculator over a range of indices concurrently and compares the
// values they produce, keeping presentation behind the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
