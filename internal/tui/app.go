package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/foto/internal/state"
	"github.com/mmcdole/foto/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
	StateConfirmDelete
	StateEditingProfile
	StateJumping
)

// focusArea is the pane receiving keys while browsing
type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

// Layout
const (
	// Header (name, bio, messages) and footer lines
	HeaderHeight = 5
	ChromeHeight = 1

	// Photo list share of the width when the form is beside it
	ListPercent  = 55
	MinListWidth = 30
)

// Create form field indexes
const (
	createTitle = iota
	createImage
)

// Profile form field indexes
const (
	profileName = iota
	profileBio
	profilePassword
	profileImage
)

// Options configure the model
type Options struct {
	UploadURL string // Base URL for stored images
	ProfileID string // Profile opened at startup
}

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool

	engine *state.Engine
	opts   Options

	// UI Components
	List        components.PhotoList
	CreateForm  components.InputModal
	EditForm    components.InputModal
	ProfileForm components.InputModal
	JumpForm    components.InputModal
	Help        help.Model

	focus focusArea

	// Dimensions
	Width  int
	Height int

	// Footer hint, separate from the engine's scoped messages
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(engine *state.Engine, opts Options) Model {
	return Model{
		State:  StateBrowsing,
		engine: engine,
		opts:   opts,
		List:   components.NewPhotoList(),
		CreateForm: components.NewInputModal("Publish Photo",
			components.Field{Label: "Title", Placeholder: "Sunrise over the bay", CharLimit: 120},
			components.Field{Label: "Image", Placeholder: "path/to/image.jpg", CharLimit: 512},
		),
		EditForm: components.NewInputModal("Edit Photo",
			components.Field{Label: "Title", CharLimit: 120},
		),
		ProfileForm: components.NewInputModal("Edit Profile",
			components.Field{Label: "Name", Placeholder: "unchanged"},
			components.Field{Label: "Bio", Placeholder: "unchanged", CharLimit: 512},
			components.Field{Label: "Password", Placeholder: "unchanged", Secret: true},
			components.Field{Label: "Profile image", Placeholder: "path/to/avatar.png", CharLimit: 512},
		),
		JumpForm: components.NewInputModal("Jump to Photo",
			components.Field{Label: "Title", Placeholder: "fuzzy title"},
		),
		Help: help.New(),
	}
}

// Init opens the configured profile
func (m Model) Init() tea.Cmd {
	return m.engine.Open(m.opts.ProfileID)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case StatusMsg:
		cmd := m.setStatus(msg.Message, msg.IsError)
		return m, cmd

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	if handled, cmd := m.engine.Update(msg); handled {
		m.syncList()
		m.afterCompletion(msg)
		return m, cmd
	}

	// Cursor blink and other input internals go to the active input
	return m.forwardToInput(msg)
}

// afterCompletion resets UI state that depends on a completed request
func (m *Model) afterCompletion(msg tea.Msg) {
	switch msg := msg.(type) {
	case state.PhotoPublishedMsg:
		if msg.Err == nil {
			m.CreateForm.Reset()
			m.List.Select(msg.Photo.ID)
		}
	case state.ProfileUpdatedMsg:
		if msg.Err == nil && m.State == StateEditingProfile {
			m.ProfileForm.Reset()
			m.ProfileForm.Blur()
			m.State = StateBrowsing
		}
	case state.ProfileDeletedMsg:
		if msg.Err == nil {
			m.leaveForm()
		}
	}
}

func (m Model) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.State == StateEditingProfile:
		m.ProfileForm, cmd, _ = m.ProfileForm.Update(msg)
	case m.State == StateJumping:
		m.JumpForm, cmd, _ = m.JumpForm.Update(msg)
	case m.List.IsFiltering():
		m.List, cmd, _ = m.List.UpdateFilter(msg)
	case m.focus == focusForm && m.engine.Form().EditVisible():
		m.EditForm, cmd, _ = m.EditForm.Update(msg)
	case m.focus == focusForm:
		m.CreateForm, cmd, _ = m.CreateForm.Update(msg)
	}
	return m, cmd
}

// syncList re-projects the collection through the active filter
func (m *Model) syncList() {
	m.List.SetRows(m.engine.Photos().Filter(m.List.Query()))
}

// setStatus shows a footer hint that clears itself
func (m *Model) setStatus(message string, isErr bool) tea.Cmd {
	m.StatusMsg = message
	m.StatusIsErr = isErr
	return ClearStatusCmd(statusDelay)
}

// focusForms moves keys to the visible photo form
func (m *Model) focusForms() {
	m.focus = focusForm
	if m.engine.Form().EditVisible() {
		m.CreateForm.Blur()
		m.EditForm.Focus()
		return
	}
	m.EditForm.Blur()
	m.CreateForm.Focus()
}

// leaveForm returns keys to the list, leaving edit mode if active
func (m *Model) leaveForm() {
	if m.engine.Form().EditVisible() {
		m.engine.CancelEdit()
	}
	m.EditForm.Blur()
	m.CreateForm.Blur()
	m.focus = focusList
}

func (m *Model) updateLayout() {
	listWidth := m.Width * ListPercent / 100
	if listWidth < MinListWidth {
		listWidth = MinListWidth
	}
	formWidth := m.Width - listWidth - 4
	contentHeight := m.Height - HeaderHeight - ChromeHeight - 2

	m.List.SetSize(listWidth-4, contentHeight)
	m.CreateForm.SetWidth(formWidth)
	m.EditForm.SetWidth(formWidth)
	m.ProfileForm.SetWidth(m.Width / 2)
	m.JumpForm.SetWidth(m.Width / 2)
	m.Help.Width = m.Width
}
