package input

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/structkit/structkit/internal/generator"
)

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// ChooseStrategy shows an interactive menu when a run would touch an
// existing target and no explicit strategy was given. path is the
// first conflicting target; the chosen strategy applies to the whole
// run. Returns ok=false when the user cancels.
func ChooseStrategy(path string, info os.FileInfo) (strategy generator.Strategy, ok bool, err error) {
	model := newStrategyMenuModel(path, info)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("failed to show conflict menu: %w", err)
	}

	result := finalModel.(strategyMenuModel)
	if result.selected == nil {
		return 0, false, nil
	}
	return *result.selected, true, nil
}

// menuChoices pairs menu labels with strategies. Preview and cancel
// are handled separately by cursor position.
var menuChoices = []struct {
	label    string
	strategy generator.Strategy
}{
	{"Skip existing targets", generator.StrategySkip},
	{"Overwrite existing targets", generator.StrategyOverwrite},
	{"Append to existing files", generator.StrategyAppend},
	{"Write under a renamed path (name_1, name_2, …)", generator.StrategyRename},
	{"Back up existing targets, then overwrite", generator.StrategyBackup},
}

var (
	previewIndex = len(menuChoices)
	cancelIndex  = len(menuChoices) + 1
)

// strategyMenuModel is the bubbletea model for the conflict menu. The
// preview entry flips the model into a viewport showing the existing
// file, and q/esc flips it back.
type strategyMenuModel struct {
	path     string
	fileInfo os.FileInfo
	cursor   int
	selected *generator.Strategy

	previewing bool
	preview    viewport.Model
	ready      bool
}

func newStrategyMenuModel(path string, info os.FileInfo) strategyMenuModel {
	return strategyMenuModel{path: path, fileInfo: info}
}

func (m strategyMenuModel) Init() tea.Cmd {
	return nil
}

func (m strategyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.previewing {
		return m.updatePreview(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < cancelIndex {
				m.cursor++
			}

		case "enter":
			switch m.cursor {
			case previewIndex:
				m.previewing = true
				m.loadPreview()
			case cancelIndex:
				return m, tea.Quit
			default:
				strategy := menuChoices[m.cursor].strategy
				m.selected = &strategy
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.resizePreview(msg.Width, msg.Height)
	}

	return m, nil
}

func (m strategyMenuModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			m.previewing = false
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resizePreview(msg.Width, msg.Height)
	}

	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *strategyMenuModel) loadPreview() {
	content, err := os.ReadFile(m.path)
	if err != nil {
		content = []byte(fmt.Sprintf("cannot read %s: %v", m.path, err))
	}
	if !m.ready {
		m.preview = viewport.New(76, 20)
		m.ready = true
	}
	m.preview.SetContent(string(content))
	m.preview.GotoTop()
}

func (m *strategyMenuModel) resizePreview(width, height int) {
	if !m.ready {
		m.preview = viewport.New(width-4, height-4)
		m.ready = true
		return
	}
	m.preview.Width = width - 4
	m.preview.Height = height - 4
}

func (m strategyMenuModel) View() string {
	if m.previewing {
		header := titleStyle.Render("Existing target: "+m.path) + "\n"
		footer := "\n" + mutedStyle.Render("  [↑/↓] Scroll    [q] Back to menu")
		return header + m.preview.View() + footer
	}

	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠ Target already exists: ") + titleStyle.Render(m.path) + "\n")
	if m.fileInfo != nil {
		b.WriteString(mutedStyle.Render("    Last modified: ") + m.fileInfo.ModTime().Format(time.RFC822) + "\n")
		b.WriteString(mutedStyle.Render("    Size: ") + formatFileSize(m.fileInfo.Size()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	labels := make([]string, 0, cancelIndex+1)
	for _, choice := range menuChoices {
		labels = append(labels, choice.label)
	}
	labels = append(labels, "Preview the existing file", "Cancel run")

	for i, label := range labels {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString("      " + label + "\n")
		}
	}

	return b.String()
}

// formatFileSize formats a size in human-readable units.
func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
