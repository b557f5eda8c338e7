// Package ui holds the color themes shared by the line-oriented output and
// the interactive browser, plus terminal detection.
package ui
