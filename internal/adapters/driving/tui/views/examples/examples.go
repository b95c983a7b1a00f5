// Package examples provides the canned-prompt picker view for the TUI.
package examples

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/messages"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/styles"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// View represents the examples picker view.
type View struct {
	styles   *styles.Styles
	examples []domain.Example
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new examples view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		examples: domain.Examples(),
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the examples view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the examples view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.examples)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if len(v.examples) == 0 {
				return v, nil
			}
			example := v.examples[v.selected]
			return v, func() tea.Msg {
				return messages.ExampleChosen{Example: example}
			}

		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	return v, nil
}

// View renders the examples list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	// Title
	b.WriteString(v.styles.Title.Render("Examples"))
	b.WriteString("\n\n")

	subtitle := v.styles.Muted.Render("Pick a prompt, it is copied into the matching view.")
	b.WriteString(subtitle)
	b.WriteString("\n\n")

	for i, example := range v.examples {
		cursor := "  "
		labelStyle := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			labelStyle = v.styles.Selected
		}

		b.WriteString(cursor + labelStyle.Render(example.Label) +
			"  " + v.styles.Muted.Render(v.kindTag(example.Kind)))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("    " + v.preview(example)))
		b.WriteString("\n")
	}

	// Footer with keybindings
	b.WriteString("\n")
	footer := v.styles.Help.Render("[j/k] Navigate  [Enter] Use  [Esc] Back")
	b.WriteString(footer)

	return b.String()
}

// kindTag labels which surface an example targets.
func (v *View) kindTag(kind domain.ExampleKind) string {
	switch kind {
	case domain.ExampleCorpusQuestion:
		return "corpus"
	case domain.ExampleContextQA:
		return "pasted context"
	case domain.ExampleSummary:
		return "summary"
	default:
		return string(kind)
	}
}

// preview renders the example's prompt line, truncated to the width.
func (v *View) preview(example domain.Example) string {
	text := example.Question
	if text == "" {
		text = example.Context
	}

	maxLen := v.width - 8
	if maxLen < 20 {
		maxLen = 20
	}
	if len(text) > maxLen {
		text = text[:maxLen-3] + "..."
	}
	return text
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedExample returns the currently selected example.
func (v *View) SelectedExample() domain.Example {
	if len(v.examples) == 0 || v.selected < 0 || v.selected >= len(v.examples) {
		return domain.Example{}
	}
	return v.examples[v.selected]
}

// Count returns the number of examples.
func (v *View) Count() int {
	return len(v.examples)
}
