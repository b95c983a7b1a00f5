// Package ask provides the main question-answering view for the TUI.
package ask

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/components/input"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/components/list"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/components/status"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/keymap"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/messages"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/styles"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

// ingestPollInterval is how often the view samples corpus-load progress.
const ingestPollInterval = 250 * time.Millisecond

// excerptRadius is how much passage text the details pane shows around
// the extracted span, in runes.
const excerptRadius = 200

// View represents the ask view with question input, answer cards, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	list      *list.AnswerList
	statusbar *status.Bar
	spinner   spinner.Model

	qaService     driving.QAService
	ingestService driving.IngestService
	ctx           context.Context

	width       int
	height      int
	ready       bool
	err         error
	ingestErr   error
	notice      string
	focusInput  bool // true = input mode (typing), false = answers mode (navigating)
	loading     bool // corpus load in flight
	asking      bool // pipeline run in flight
	stage       string
	docCount    int
	contextText string // pasted passage attached from an example
	showDetails bool
}

// NewView creates a new ask view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	qaService driving.QAService,
	ingestService driving.IngestService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewQuestionInput(s),
		list:          list.NewAnswerList(s),
		statusbar:     status.NewBar(s, km),
		spinner:       sp,
		qaService:     qaService,
		ingestService: ingestService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		ready:         false,
		focusInput:    true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view. The first visit kicks off the corpus load
// so the pipeline is ready by the time a question is submitted.
func (v *View) Init() tea.Cmd {
	cmds := []tea.Cmd{v.input.Init()}

	if v.ingestService == nil || v.ingestService.Ready() {
		if v.ingestService != nil && v.docCount == 0 {
			cmds = append(cmds, v.loadCorpusInfo())
		}
		return tea.Batch(cmds...)
	}

	if v.loading {
		// Load already in flight from a previous visit, resume the spinner.
		cmds = append(cmds, v.spinner.Tick)
		return tea.Batch(cmds...)
	}

	v.loading = true
	v.ingestErr = nil
	v.stage = domain.StageDownloading.Description()
	v.statusbar.SetState(status.StateLoading)
	v.statusbar.SetMessage(v.stage)
	cmds = append(cmds, v.performIngest(), v.pollIngest(), v.spinner.Tick)
	return tea.Batch(cmds...)
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if v.loading || v.asking {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil

	case messages.AskCompleted:
		v.handleAskCompleted(msg)
		return v, nil

	case messages.IngestProgressed:
		if !v.loading {
			return v, nil
		}
		v.stage = msg.Status.Stage.Description()
		v.statusbar.SetMessage(v.stage)
		return v, v.pollIngest()

	case messages.IngestCompleted:
		v.handleIngestCompleted(msg)
		return v, nil

	case messages.CorpusInfoLoaded:
		if msg.Err == nil {
			v.docCount = msg.Documents
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.asking = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// If the details pane is open, any close key dismisses it
	if v.showDetails {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			v.showDetails = false
		}
		return v, nil
	}

	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits the question
	if msg.Type == tea.KeyEnter && v.focusInput {
		question := v.input.Value()
		if question == "" || v.asking {
			return v, nil
		}
		// Corpus questions wait for the load; pasted contexts do not need it
		if v.loading && v.contextText == "" {
			return v, nil
		}
		v.asking = true
		v.notice = ""
		v.statusbar.SetState(status.StateThinking)
		v.focusInput = false // Move to answers mode after submission
		v.input.Blur()
		return v, tea.Batch(v.performAsk(question), v.spinner.Tick)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Answers mode: Enter opens the passage details pane
	if msg.Type == tea.KeyEnter {
		if v.list.SelectedAnswer() != nil {
			v.showDetails = true
		}
		return v, nil
	}

	// Answers mode: handle navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		// New question: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.contextText = ""
		v.notice = ""
		return v, nil
	}

	return v, nil
}

// performAsk runs the pipeline and returns the answers.
func (v *View) performAsk(question string) tea.Cmd {
	contextText := v.contextText
	return func() tea.Msg {
		if v.qaService == nil {
			return messages.ErrorOccurred{Err: ErrNoQAService}
		}

		var (
			result *domain.AskResult
			err    error
		)
		if contextText != "" {
			result, err = v.qaService.AskContext(v.ctx, question, contextText)
		} else {
			result, err = v.qaService.Ask(v.ctx, question, domain.AskOptions{})
		}
		if err != nil {
			return messages.AskCompleted{Result: nil, Err: err}
		}
		return messages.AskCompleted{Result: result, Err: nil}
	}
}

// performIngest loads the corpus and reports the outcome.
func (v *View) performIngest() tea.Cmd {
	return func() tea.Msg {
		report, err := v.ingestService.Ingest(v.ctx, driving.IngestOptions{})
		return messages.IngestCompleted{Report: report, Err: err}
	}
}

// pollIngest samples load progress for the stage line.
func (v *View) pollIngest() tea.Cmd {
	return tea.Tick(ingestPollInterval, func(time.Time) tea.Msg {
		return messages.IngestProgressed{Status: v.ingestService.Status()}
	})
}

// loadCorpusInfo fetches the corpus size for the caption line.
func (v *View) loadCorpusInfo() tea.Cmd {
	return func() tea.Msg {
		count, err := v.ingestService.DocumentCount(v.ctx)
		return messages.CorpusInfoLoaded{Documents: count, Err: err}
	}
}

// handleAskCompleted processes the pipeline outcome. Failures render
// as the blanket no-answer message rather than the raw error.
func (v *View) handleAskCompleted(msg messages.AskCompleted) {
	v.asking = false
	if msg.Err != nil {
		v.err = msg.Err
		v.notice = domain.MsgNoAnswer
		v.list.SetAnswers(nil)
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetAnswerCount(0)
		// Back to input mode so the question can be rephrased
		v.focusInput = true
		v.input.Focus()
		return
	}

	v.err = nil
	v.notice = ""
	v.list.SetAnswers(msg.Result.Answers)
	v.statusbar.SetState(status.StateAnswers)
	v.statusbar.SetAnswerCount(len(msg.Result.Answers))

	// Switch to answers mode after a successful run
	v.focusInput = false
	v.input.Blur()
}

// handleIngestCompleted processes the corpus-load outcome.
func (v *View) handleIngestCompleted(msg messages.IngestCompleted) {
	v.loading = false
	if msg.Err != nil {
		v.ingestErr = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.ingestErr = nil
	if msg.Report != nil {
		v.docCount = msg.Report.Documents
	}
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	// Header
	header := v.styles.Title.Render("Courtside")
	sections = append(sections, header, "")

	// Question input
	inputView := v.input.View()
	sections = append(sections, inputView)

	// Caption line under the input
	sections = append(sections, v.styles.Muted.Render(v.caption()), "")

	// Corpus load progress
	if v.loading {
		progress := v.spinner.View() + " " + v.styles.Muted.Render(v.stage)
		sections = append(sections, progress, "")
	}

	// Pipeline run in flight
	if v.asking {
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Thinking..."), "")
	}

	// Corpus load failure
	if v.ingestErr != nil {
		errView := v.styles.Error.Render("Corpus load failed: " + v.ingestErr.Error())
		sections = append(sections, errView, "")
	}

	// Blanket message for failed or empty runs
	if v.notice != "" {
		sections = append(sections, v.styles.Warning.Render(v.notice), "")
	}

	// Answer list
	listView := v.list.View()
	sections = append(sections, listView)

	// Details pane (if open)
	if v.showDetails {
		sections = append(sections, "", v.renderDetails())
	}

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// caption describes what questions are answered from.
func (v *View) caption() string {
	if v.contextText != "" {
		return "Answering from the pasted context."
	}
	if v.docCount > 0 {
		return fmt.Sprintf("%s (%d passages loaded)", domain.CorpusCaption, v.docCount)
	}
	return domain.CorpusCaption
}

// renderDetails renders the passage pane for the selected answer.
func (v *View) renderDetails() string {
	answer := v.list.SelectedAnswer()
	if answer == nil {
		return ""
	}

	title := answer.Document.Title
	if title == "" {
		title = "(Untitled)"
	}

	lines := make([]string, 0, 6)
	lines = append(lines, v.styles.Subtitle.Render(title))
	if answer.Document.URL != "" {
		lines = append(lines, v.styles.Muted.Render(answer.Document.URL))
	}
	lines = append(lines, "", v.styles.Normal.Render(answer.Excerpt(excerptRadius)))

	content := strings.Join(lines, "\n")

	paneWidth := v.width - 4
	if paneWidth < 20 {
		paneWidth = 20
	}

	// Wrap in a bordered box
	paneStyle := v.styles.Border.
		Padding(0, 1).
		Width(paneWidth)

	return paneStyle.Render(content)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-12) // Reserve space for header, input, caption, status
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

// Question returns the current question.
func (v *View) Question() string {
	return v.input.Value()
}

// SetQuestion sets the question input.
func (v *View) SetQuestion(question string) {
	v.input.SetValue(question)
}

// AttachContext attaches a pasted passage. Submissions answer from it
// instead of the corpus until it is cleared with a new question.
func (v *View) AttachContext(text string) {
	v.contextText = text
}

// Context returns the attached passage, if any.
func (v *View) Context() string {
	return v.contextText
}

// Answers returns the current answers.
func (v *View) Answers() []domain.Answer {
	return v.list.Answers()
}

// SelectedIndex returns the index of the selected answer.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedAnswer returns the currently selected answer.
func (v *View) SelectedAnswer() *domain.Answer {
	return v.list.SelectedAnswer()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Notice returns the blanket message shown for failed runs, if any.
func (v *View) Notice() string {
	return v.notice
}

// Loading returns whether a corpus load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// DetailsShown returns whether the passage pane is open.
func (v *View) DetailsShown() bool {
	return v.showDetails
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.notice = ""
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode. An in-flight corpus
// load keeps going.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetAnswers(nil)
	v.err = nil
	v.notice = ""
	v.showDetails = false
	v.contextText = ""
	v.asking = false
	if !v.loading {
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
	}
	v.statusbar.SetAnswerCount(0)
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
