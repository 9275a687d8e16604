package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rowfit/rowfit/pkg/textwrap"
)

// Preview styles
var (
	previewLineStyle = lipgloss.NewStyle().Foreground(colorWhite)
	previewRuleStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// wrapModel - Interactive wrap width preview
// =============================================================================

// wrapModel is the bubbletea model for the interactive wrap preview.
// Left/right arrows adjust the width one character at a time and the
// broken lines re-render immediately.
type wrapModel struct {
	text  string
	width float64
	wrap  bool
	lines []string
	err   error
}

// newWrapModel creates a wrap preview model at the given starting width.
func newWrapModel(text string, width float64, wrap bool) wrapModel {
	m := wrapModel{text: text, width: width, wrap: wrap}
	m.rewrap()
	return m
}

// rewrap recomputes the display lines for the current width.
func (m *wrapModel) rewrap() {
	m.lines, m.err = textwrap.BreakLines(m.text, m.wrap, m.width)
}

func (m wrapModel) Init() tea.Cmd {
	return nil
}

func (m wrapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "left", "h":
			if m.width > 1 {
				m.width--
				m.rewrap()
			}
		case "right", "l":
			m.width++
			m.rewrap()
		case "w":
			m.wrap = !m.wrap
			m.rewrap()
		}
	}
	return m, nil
}

func (m wrapModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Wrap Preview"))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("←/→ adjust width  w toggle wrap  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	// Ruler marking the width budget
	budget := int(m.width)
	b.WriteString(previewRuleStyle.Render(strings.Repeat("─", budget) + "┐"))
	b.WriteString("\n")
	for _, line := range m.lines {
		b.WriteString(previewLineStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(previewRuleStyle.Render(strings.Repeat("─", budget) + "┘"))
	b.WriteString("\n\n")

	status := fmt.Sprintf("width %.0f · %d lines", m.width, len(m.lines))
	if !m.wrap {
		status += " · wrap off"
	}
	b.WriteString(previewDimStyle.Render(status))

	return b.String()
}
