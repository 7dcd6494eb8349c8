// Package output provides styled terminal output for the CLI.
//
// Message prefixes are baked into the styles with SetString, so the
// print helpers stay one-liners and commands read as plain
// Success/Error/Info calls.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	successMark = successStyle.SetString("✓")
	errorMark   = errorStyle.SetString("✗")
	infoMark    = infoStyle.SetString("•")
	verboseMark = mutedStyle.SetString("·")
	stepStyle   = mutedStyle.PaddingLeft(3)

	verboseMode bool
)

// SetVerbose enables or disables verbose output. Called by the CLI
// when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a green completion message.
func Success(msg string) {
	fmt.Println(successMark.Render(msg))
}

// Error prints a red failure message.
func Error(msg string) {
	fmt.Println(errorMark.Render(msg))
}

// Info prints a cyan status message.
func Info(msg string) {
	fmt.Println(infoMark.Render(msg))
}

// Step prints an indented gray sub-item, for next steps and details.
func Step(msg string) {
	fmt.Println(stepStyle.Render(msg))
}

// Verbose prints a gray debug message only when verbose mode is on.
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(verboseMark.Render(msg))
	}
}
