package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/messages"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/styles"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/views/ask"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/views/examples"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/views/menu"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/tui/views/summarise"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// askView is the question-answering view component.
	askView *ask.View

	// summariseView is the text summarisation view component.
	summariseView *summarise.View

	// examplesView is the canned-prompt picker view component.
	examplesView *examples.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// question is the current question (kept for accessor compatibility).
	question string

	// answers holds the current answers (kept for accessor compatibility).
	answers []domain.Answer

	// selectedIndex is the currently selected answer (kept for accessor compatibility).
	selectedIndex int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	menuView := menu.NewView(s)
	askView := ask.NewView(s, nil, ports.QA, ports.Ingest)
	summariseView := summarise.NewView(s, nil, ports.Summarise)
	examplesView := examples.NewView(s)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menuView,
		askView:       askView,
		summariseView: summariseView,
		examplesView:  examplesView,
		currentView:   messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.askView.WithContext(ctx)
	a.summariseView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("courtside - Sports QA"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.askView.SetDimensions(msg.Width, msg.Height)
		a.summariseView.SetDimensions(msg.Width, msg.Height)
		a.examplesView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
			// Sync state from askView for accessor compatibility
			a.question = a.askView.Question()
			a.answers = a.askView.Answers()
			a.selectedIndex = a.askView.SelectedIndex()
			a.err = a.askView.Err()
			return a, cmd

		case messages.ViewSummarise:
			a.summariseView, cmd = a.summariseView.Update(msg)
			a.err = a.summariseView.Err()
			return a, cmd

		case messages.ViewExamples:
			a.examplesView, cmd = a.examplesView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.AskCompleted:
		// Forward to askView
		a.askView, cmd = a.askView.Update(msg)
		// Sync state
		a.answers = a.askView.Answers()
		a.err = a.askView.Err()
		a.selectedIndex = 0
		return a, cmd

	case messages.IngestProgressed, messages.IngestCompleted, messages.CorpusInfoLoaded:
		// The corpus load keeps going while other views are active
		a.askView, cmd = a.askView.Update(msg)
		return a, cmd

	case messages.SummariseCompleted:
		a.summariseView, cmd = a.summariseView.Update(msg)
		a.err = a.summariseView.Err()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewAsk:
			a.askView.Reset()
			return a, a.askView.Init()
		case messages.ViewSummarise:
			a.summariseView.Reset()
			return a, a.summariseView.Init()
		case messages.ViewExamples:
			return a, a.examplesView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.ExampleChosen:
		// Navigate to the matching view with the prompt prefilled
		switch msg.Example.Kind {
		case domain.ExampleSummary:
			a.summariseView.Reset()
			a.summariseView.SetText(msg.Example.Context)
			a.currentView = messages.ViewSummarise
			return a, a.summariseView.Init()
		case domain.ExampleCorpusQuestion, domain.ExampleContextQA:
			a.askView.Reset()
			a.askView.SetQuestion(msg.Example.Question)
			if msg.Example.Kind == domain.ExampleContextQA {
				a.askView.AttachContext(msg.Example.Context)
			}
			a.currentView = messages.ViewAsk
			return a, a.askView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
		case messages.ViewSummarise:
			a.summariseView, cmd = a.summariseView.Update(msg)
		case messages.ViewMenu, messages.ViewExamples, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewAsk:
		a.askView, cmd = a.askView.Update(msg)
	case messages.ViewSummarise:
		a.summariseView, cmd = a.summariseView.Update(msg)
	case messages.ViewExamples:
		a.examplesView, cmd = a.examplesView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewAsk:
		return a.askView.View()
	case messages.ViewSummarise:
		return a.summariseView.View()
	case messages.ViewExamples:
		return a.examplesView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Ask:
  (type)      Enter your question
  enter       Submit question
  esc         Back to Menu

Answers:
  j/k, ↑/↓    Navigate answers
  enter       Show passage
  n           New question
  esc         Back to Menu

Summarise:
  (type)      Enter the text to summarise
  ctrl+s      Summarise
  tab         Cycle summary profile
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Question returns the current question.
func (a *App) Question() string {
	return a.question
}

// Answers returns the current answers.
func (a *App) Answers() []domain.Answer {
	return a.answers
}

// SelectedIndex returns the currently selected answer index.
func (a *App) SelectedIndex() int {
	return a.selectedIndex
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Also set view dimensions so they render properly
	a.askView.SetDimensions(width, height)
	a.summariseView.SetDimensions(width, height)
	a.examplesView.SetDimensions(width, height)
}
