// Package summarise provides the text summarisation view for the TUI.
package summarise

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/components/status"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/keymap"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/messages"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/styles"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// View represents the summarise view with a multi-line text area.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	textarea  textarea.Model
	statusbar *status.Bar
	spinner   spinner.Model

	summariseService driving.SummariseService
	ctx              context.Context

	profiles     []domain.SummaryProfile
	profileIndex int

	summary     *domain.Summary
	summarising bool
	err         error
	notice      string

	width  int
	height int
	ready  bool
}

// NewView creates a new summarise view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	summariseService driving.SummariseService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "Enter the text to summarise..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(70)
	ta.SetHeight(8)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	profiles := domain.AllSummaryProfiles()
	if summariseService != nil {
		if p := summariseService.Profiles(); len(p) > 0 {
			profiles = p
		}
	}

	return &View{
		styles:           s,
		keymap:           km,
		textarea:         ta,
		statusbar:        status.NewBar(s, km),
		spinner:          sp,
		summariseService: summariseService,
		ctx:              context.Background(),
		profiles:         profiles,
		width:            80,
		height:           24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the summarise view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if v.summarising {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil

	case messages.SummariseCompleted:
		v.handleSummariseCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.summarising = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to textarea component
	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case tea.KeyCtrlS:
		// Ctrl+S submits; Enter inserts a newline in the textarea
		text := strings.TrimSpace(v.textarea.Value())
		if text == "" {
			v.notice = domain.MsgEmptySummaryInput
			return v, nil
		}
		if v.summarising {
			return v, nil
		}
		v.summarising = true
		v.summary = nil
		v.notice = ""
		v.statusbar.SetState(status.StateThinking)
		return v, tea.Batch(v.performSummarise(text), v.spinner.Tick)

	case tea.KeyTab:
		// Cycle the summary profile
		v.profileIndex = (v.profileIndex + 1) % len(v.profiles)
		return v, nil
	default:
		// All other keys go to the textarea
	}

	var cmd tea.Cmd
	v.textarea, cmd = v.textarea.Update(msg)
	return v, cmd
}

// performSummarise runs the summariser and returns the outcome.
func (v *View) performSummarise(text string) tea.Cmd {
	profile := v.profiles[v.profileIndex].Name
	return func() tea.Msg {
		if v.summariseService == nil {
			return messages.ErrorOccurred{Err: ErrNoSummariseService}
		}

		summary, err := v.summariseService.Summarise(v.ctx, text, domain.SummaryOptions{Profile: profile})
		if err != nil {
			return messages.SummariseCompleted{Summary: nil, Err: err}
		}
		return messages.SummariseCompleted{Summary: summary, Err: nil}
	}
}

// handleSummariseCompleted processes the summariser outcome.
func (v *View) handleSummariseCompleted(msg messages.SummariseCompleted) {
	v.summarising = false
	if msg.Err != nil {
		v.err = msg.Err
		switch {
		case errors.Is(msg.Err, domain.ErrInvalidInput):
			v.notice = domain.MsgEmptySummaryInput
			v.statusbar.SetState(status.StateReady)
		case errors.Is(msg.Err, domain.ErrLowMemory):
			v.notice = domain.MsgLowMemory
			v.statusbar.SetState(status.StateReady)
		default:
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		}
		return
	}

	v.err = nil
	v.notice = ""
	v.summary = msg.Summary
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// View renders the summarise view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	// Header
	header := v.styles.Title.Render("Summarise")
	sections = append(sections, header, "")

	// Text area
	sections = append(sections, v.textarea.View())

	// Profile line
	profile := v.profiles[v.profileIndex]
	profileLine := fmt.Sprintf("Profile: %s (%s, up to %d tokens)", profile.Name, profile.Model, profile.MaxLength)
	sections = append(sections, v.styles.Muted.Render(profileLine), "")

	// Run in flight
	if v.summarising {
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Summarising..."), "")
	}

	// Empty-input and low-memory notices
	if v.notice != "" {
		sections = append(sections, v.styles.Warning.Render(v.notice), "")
	}

	// Summary as numbered points
	if v.summary != nil {
		sections = append(sections, v.styles.Subtitle.Render("Summary"), "")
		for i, point := range v.summary.Points {
			line := fmt.Sprintf("%d. %s", i+1, point)
			sections = append(sections, v.styles.Normal.Render(line))
		}
		sections = append(sections, "", v.styles.Muted.Render("Model: "+v.summary.Model))
	}

	// Footer with keybindings
	sections = append(sections, "")
	footer := v.styles.Help.Render("[ctrl+s] Summarise  [tab] Profile  [esc] Back")
	sections = append(sections, footer, "")

	// Status bar at bottom
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	taWidth := width - 4
	if taWidth < 30 {
		taWidth = 30
	}
	v.textarea.SetWidth(taWidth)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Text returns the current textarea content.
func (v *View) Text() string {
	return v.textarea.Value()
}

// SetText sets the textarea content.
func (v *View) SetText(text string) {
	v.textarea.SetValue(text)
}

// Summary returns the last generated summary, if any.
func (v *View) Summary() *domain.Summary {
	return v.summary
}

// Profile returns the currently selected summary profile.
func (v *View) Profile() domain.SummaryProfile {
	return v.profiles[v.profileIndex]
}

// Summarising returns whether a run is in flight.
func (v *View) Summarising() bool {
	return v.summarising
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Notice returns the user-facing notice, if any.
func (v *View) Notice() string {
	return v.notice
}

// Reset resets the view to its initial state.
func (v *View) Reset() {
	v.textarea.Reset()
	v.textarea.Focus()
	v.summary = nil
	v.summarising = false
	v.err = nil
	v.notice = ""
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}
