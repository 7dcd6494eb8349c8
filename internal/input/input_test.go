package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedStdin(t *testing.T, answers string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(answers)
	t.Cleanup(func() { stdin = old })
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name         string
		answer       string
		defaultValue string
		want         string
	}{
		{"typed value", "myapp\n", "", "myapp"},
		{"surrounding whitespace trimmed", "  myapp  \n", "", "myapp"},
		{"enter returns default", "\n", "fallback", "fallback"},
		{"typed value beats default", "myapp\n", "fallback", "myapp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedStdin(t, tt.answer)
			assert.Equal(t, tt.want, Prompt("value", tt.defaultValue))
		})
	}
}

func TestPrompt_ClosedInputReturnsDefault(t *testing.T) {
	old := stdin
	stdin = io.MultiReader()
	t.Cleanup(func() { stdin = old })

	assert.Equal(t, "fallback", Prompt("value", "fallback"))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		defaultYes bool
		want       bool
	}{
		{"y", "y\n", false, true},
		{"yes", "yes\n", false, true},
		{"uppercase yes", "YES\n", false, true},
		{"n", "n\n", true, false},
		{"no", "no\n", true, false},
		{"enter takes default yes", "\n", true, true},
		{"enter takes default no", "\n", false, false},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedStdin(t, tt.answer)
			assert.Equal(t, tt.want, Confirm("overwrite?", tt.defaultYes))
		})
	}
}
