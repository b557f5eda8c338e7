// Package tui is an interactive browser over one open device handle.
package tui
