package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	headerStyle  lipgloss.Style
	markStyle    lipgloss.Style
	borderStyle  lipgloss.Style
)

func init() {
	initStyles()
}

func initStyles() {
	if !IsTerminal() {
		successStyle = lipgloss.NewStyle()
		warningStyle = lipgloss.NewStyle()
		headerStyle = lipgloss.NewStyle()
		markStyle = lipgloss.NewStyle()
		borderStyle = lipgloss.NewStyle()
		return
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// Success renders success text
func Success(text string) string {
	return successStyle.Render(text)
}

// Warning renders warning text
func Warning(text string) string {
	return warningStyle.Render(text)
}

// SuccessMsg writes a success line to w
func SuccessMsg(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, Success("✓")+" "+fmt.Sprintf(format, args...))
}

// WarningMsg writes a warning line to w
func WarningMsg(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, Warning("⚠")+" "+fmt.Sprintf(format, args...))
}
