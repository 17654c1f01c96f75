package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Core styles
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))            // dark green
	success2Style = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))             // green
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // cyan
	debugStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))           // light grey
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"arrow":   "→",
	"bullet":  "•",
	"hline":   "━",
}

var colorEnabled = true

// SetColorEnabled toggles styling globally (--no-color).
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

func PrintSuccess(text string) {
	fmt.Println(render(successStyle, text))
}
func PrintSuccess2(text string) {
	fmt.Println(render(success2Style, text))
}
func PrintError(text string) {
	fmt.Println(render(errorStyle, text))
}
func PrintWarning(text string) {
	fmt.Println(render(warningStyle, text))
}
func PrintInfo(text string) {
	fmt.Println(render(infoStyle, text))
}
func PrintHeader(text string) {
	fmt.Println(render(headerStyle, text))
}
func FSuccess(text string) string {
	return render(successStyle, text)
}
func FError(text string) string {
	return render(errorStyle, text)
}
func FWarning(text string) string {
	return render(warningStyle, text)
}
func FDebug(text string) string {
	return render(debugStyle, text)
}
