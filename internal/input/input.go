// Package input provides interactive terminal input: plain prompts for
// content variables and a menu for choosing a conflict strategy. The
// generator core never calls into this package; it always receives a
// fully resolved option set.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// stdin is a variable so tests can feed canned answers.
	stdin io.Reader = os.Stdin
)

// Prompt asks the user for text input with an optional default value.
// Pressing Enter without typing anything returns the default.
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(stdin)

	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	text, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return defaultValue
	}
	return text
}

// Confirm asks a yes/no question. Returns true for y/yes (case
// insensitive); Enter returns defaultYes.
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(stdin)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	text, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}
