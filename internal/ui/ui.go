// Package ui renders terminal output for slotsheet: styled status lines and
// the availability grid.
package ui

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true
)

// DisableColors disables all color output
func DisableColors() {
	colorEnabled = false
	isTerminal = false
	initStyles()
}

// IsTerminal checks if stdout is a terminal
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// FormatBytes formats bytes to human-readable format
func FormatBytes(n int) string {
	return humanize.Bytes(uint64(n))
}
