// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/styles"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// AnswerList displays extracted answers in a navigable list.
type AnswerList struct {
	answers  []domain.Answer
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewAnswerList creates a new answer list component.
func NewAnswerList(s *styles.Styles) *AnswerList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &AnswerList{
		answers:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the answer list.
func (a *AnswerList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (a *AnswerList) Update(msg tea.Msg) (*AnswerList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			a.MoveUp()
		case tea.KeyDown:
			a.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			a.MoveUp()
		case "j":
			a.MoveDown()
		}
	}
	return a, nil
}

// View renders the answer list.
func (a *AnswerList) View() string {
	if len(a.answers) == 0 {
		return a.styles.Muted.Render("No answers")
	}

	lines := make([]string, 0, len(a.answers)*3+2)

	// Header
	header := a.styles.Subtitle.Render(fmt.Sprintf("Answers (%d)", len(a.answers)))
	lines = append(lines, header, "")

	// Calculate visible range based on height
	// Each answer takes 3 lines (span + title + URL)
	visibleCount := (a.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if a.selected >= visibleCount {
		start = a.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(a.answers) {
		end = len(a.answers)
	}

	for i := start; i < end; i++ {
		line := a.renderAnswer(i, &a.answers[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderAnswer formats a single answer with its document provenance.
func (a *AnswerList) renderAnswer(index int, answer *domain.Answer) string {
	// Indicator for selected item
	indicator := "  "
	if index == a.selected {
		indicator = "> "
	}

	// Extracted span, quoted
	span := fmt.Sprintf("%q", answer.Text)

	// Truncate span if too long
	maxSpanLen := a.width - 20
	if maxSpanLen < 10 {
		maxSpanLen = 10
	}
	if len(span) > maxSpanLen {
		span = span[:maxSpanLen-3] + "..."
	}

	score := answer.FormattedScore()

	var spanLine string
	if index == a.selected {
		spanLine = a.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxSpanLen, span, score))
	} else {
		spanLine = a.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxSpanLen, span)) +
			a.styles.Muted.Render(score)
	}

	// Document title line
	title := answer.Document.Title
	if title == "" {
		title = "(Untitled)"
	}
	titleLine := a.styles.Subtitle.Render("    " + title)

	// URL line (if available)
	var urlLine string
	if answer.Document.URL != "" {
		url := answer.Document.URL
		maxURLLen := a.width - 6
		if maxURLLen < 20 {
			maxURLLen = 20
		}
		if len(url) > maxURLLen {
			url = url[:maxURLLen-3] + "..."
		}
		urlLine = "\n" + a.styles.Muted.Render("    "+url)
	}

	return spanLine + "\n" + titleLine + urlLine
}

// SetAnswers updates the answer list.
func (a *AnswerList) SetAnswers(answers []domain.Answer) {
	a.answers = answers
	a.selected = 0
}

// Answers returns the current answers.
func (a *AnswerList) Answers() []domain.Answer {
	return a.answers
}

// Selected returns the index of the selected answer.
func (a *AnswerList) Selected() int {
	return a.selected
}

// SetSelected sets the selected index.
func (a *AnswerList) SetSelected(index int) {
	if index >= 0 && index < len(a.answers) {
		a.selected = index
	}
}

// SelectedAnswer returns the currently selected answer, or nil if none.
func (a *AnswerList) SelectedAnswer() *domain.Answer {
	if len(a.answers) == 0 || a.selected < 0 || a.selected >= len(a.answers) {
		return nil
	}
	return &a.answers[a.selected]
}

// MoveUp moves selection up.
func (a *AnswerList) MoveUp() {
	if a.selected > 0 {
		a.selected--
	}
}

// MoveDown moves selection down.
func (a *AnswerList) MoveDown() {
	if a.selected < len(a.answers)-1 {
		a.selected++
	}
}

// SetDimensions sets the component dimensions.
func (a *AnswerList) SetDimensions(width, height int) {
	a.width = width
	a.height = height
}

// Width returns the current width.
func (a *AnswerList) Width() int {
	return a.width
}

// Height returns the current height.
func (a *AnswerList) Height() int {
	return a.height
}

// Count returns the number of answers.
func (a *AnswerList) Count() int {
	return len(a.answers)
}

// IsEmpty returns whether the list is empty.
func (a *AnswerList) IsEmpty() bool {
	return len(a.answers) == 0
}
