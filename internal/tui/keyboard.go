package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/foto/internal/domain"
	"github.com/mmcdole/foto/internal/tui/components"
)

const (
	notOwnerText    = "Only the profile owner can do that"
	noChangesText   = "Nothing to update"
	noSelectionText = "No photo selected"
	noMatchText     = "No photo matches"
	refreshingText  = "Refreshing..."
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Cancel, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateConfirmDelete:
		switch {
		case key.Matches(msg, Keys.Confirm):
			m.State = StateBrowsing
			return m, m.engine.DeleteProfile()
		case key.Matches(msg, Keys.Deny):
			m.State = StateBrowsing
		}
		return m, nil

	case StateEditingProfile:
		return m.handleProfileForm(msg)

	case StateJumping:
		return m.handleJump(msg)
	}

	if m.List.IsFiltering() {
		return m.handleFilter(msg)
	}

	if m.focus == focusForm {
		return m.handlePhotoForm(msg)
	}

	return m.handleListKeys(msg)
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.List.MoveUp()
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.List.MoveDown()
		return m, nil

	case key.Matches(msg, Keys.Filter):
		cmd := m.List.StartFilter()
		return m, cmd

	case key.Matches(msg, Keys.Jump):
		m.JumpForm.Reset()
		m.JumpForm.Focus()
		m.State = StateJumping
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		cmd := m.setStatus(refreshingText, false)
		return m, tea.Batch(m.engine.Refresh(), cmd)

	case key.Matches(msg, Keys.Cancel):
		// Clear active filter if any
		if m.List.Query() != "" {
			m.List.StopFilter(true)
			m.syncList()
		}
		return m, nil
	}

	// Everything below writes to the account
	if !key.Matches(msg, Keys.Focus, Keys.Edit, Keys.Delete, Keys.EditProfile, Keys.DeleteAccount) {
		return m, nil
	}
	if !m.engine.IsOwner() {
		cmd := m.setStatus(notOwnerText, true)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Focus):
		m.focusForms()

	case key.Matches(msg, Keys.Edit):
		cmd := m.editSelected()
		return m, cmd

	case key.Matches(msg, Keys.Delete):
		photo, ok := m.List.Selected()
		if !ok {
			cmd := m.setStatus(noSelectionText, true)
			return m, cmd
		}
		return m, m.engine.DeletePhoto(photo.ID)

	case key.Matches(msg, Keys.EditProfile):
		m.ProfileForm.Reset()
		m.ProfileForm.Focus()
		m.State = StateEditingProfile

	case key.Matches(msg, Keys.DeleteAccount):
		m.State = StateConfirmDelete
	}
	return m, nil
}

// editSelected enters edit mode for the photo under the cursor
func (m *Model) editSelected() tea.Cmd {
	photo, ok := m.List.Selected()
	if !ok {
		return m.setStatus(noSelectionText, true)
	}
	if err := m.engine.EnterEdit(photo); err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.EditForm.Reset()
	m.EditForm.SetValue(0, m.engine.Form().Draft().Title)
	m.focusForms()
	return nil
}

// handlePhotoForm routes keys to the visible photo form
func (m Model) handlePhotoForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.engine.Form().EditVisible() {
		var cmd tea.Cmd
		var event components.InputEvent
		m.EditForm, cmd, event = m.EditForm.Update(msg)
		switch event {
		case components.InputChanged:
			m.engine.SetDraftTitle(m.EditForm.Value(0))
		case components.InputSubmitted:
			return m, m.engine.SubmitEdit()
		case components.InputCancelled:
			m.leaveForm()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	var event components.InputEvent
	m.CreateForm, cmd, event = m.CreateForm.Update(msg)
	switch event {
	case components.InputSubmitted:
		return m, m.engine.SubmitCreate(m.CreateForm.Value(createTitle), m.CreateForm.Value(createImage))
	case components.InputCancelled:
		// Values are kept for the next visit
		m.leaveForm()
	}
	return m, cmd
}

func (m Model) handleProfileForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var event components.InputEvent
	m.ProfileForm, cmd, event = m.ProfileForm.Update(msg)

	switch event {
	case components.InputSubmitted:
		fields := domain.ProfileUpdate{
			Name:      m.ProfileForm.Value(profileName),
			Bio:       m.ProfileForm.Value(profileBio),
			Password:  m.ProfileForm.Value(profilePassword),
			ImagePath: m.ProfileForm.Value(profileImage),
		}
		if fields.IsEmpty() {
			cmd := m.setStatus(noChangesText, false)
			return m, cmd
		}
		return m, m.engine.UpdateProfile(fields)

	case components.InputCancelled:
		m.ProfileForm.Blur()
		m.State = StateBrowsing
		return m, nil
	}
	return m, cmd
}

// handleJump moves the cursor to the best fuzzy title match
func (m Model) handleJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var event components.InputEvent
	m.JumpForm, cmd, event = m.JumpForm.Update(msg)

	switch event {
	case components.InputSubmitted:
		m.JumpForm.Blur()
		m.State = StateBrowsing

		matches := m.engine.Photos().Find(m.JumpForm.Value(0))
		if len(matches) == 0 {
			cmd := m.setStatus(noMatchText, true)
			return m, cmd
		}
		// The filter may hide the match
		if !m.List.Select(matches[0].ID) {
			m.List.StopFilter(true)
			m.syncList()
			m.List.Select(matches[0].ID)
		}
		return m, nil

	case components.InputCancelled:
		m.JumpForm.Blur()
		m.State = StateBrowsing
		return m, nil
	}
	return m, cmd
}

func (m Model) handleFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.List.StopFilter(true)
		m.syncList()
		return m, nil
	case "enter":
		m.List.StopFilter(false)
		return m, nil
	}

	var cmd tea.Cmd
	var changed bool
	m.List, cmd, changed = m.List.UpdateFilter(msg)
	if changed {
		m.syncList()
	}
	return m, cmd
}
