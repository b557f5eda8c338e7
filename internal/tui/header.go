package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel renders the top bar: title, version, device and position.
type HeaderModel struct {
	version string
	device  string
	width   int
}

// NewHeaderModel creates a header for the named device.
func NewHeaderModel(version, device string) HeaderModel {
	return HeaderModel{version: version, device: device}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header for the given position.
func (h HeaderModel) View(pos, maxIndex int64) string {
	titleText := "fibdrv"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText) + versionStyle.Render(" | "+h.device)
	right := positionStyle.Render(fmt.Sprintf("F(%d) of %d", pos, maxIndex))

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}
