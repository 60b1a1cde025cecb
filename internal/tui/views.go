package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/foto/internal/adapter"
	"github.com/mmcdole/foto/internal/state"
	"github.com/mmcdole/foto/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	// Handle modal states
	switch m.State {
	case StateHelp:
		return m.renderHelp()
	case StateConfirmDelete:
		return m.renderDeleteConfirmation()
	case StateEditingProfile:
		return m.renderCentered(m.ProfileForm.View())
	case StateJumping:
		return m.renderCentered(m.JumpForm.View())
	}

	list := m.List.View(m.focus == focusList)

	var form string
	if m.engine.IsOwner() {
		form = lipgloss.JoinVertical(lipgloss.Left,
			m.renderPhotoForm(),
			m.renderSelected(),
		)
	} else {
		form = m.renderSelected()
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", form)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderFooter(),
	)
}

// renderHeader renders the viewed profile with its scoped message or error
func (m Model) renderHeader() string {
	profile := m.engine.Profile()
	user := profile.User()

	var lines []string
	if user.IsEmpty() {
		if m.engine.Tracker().Loading(state.CategoryProfileRead) {
			lines = append(lines, styles.DimStyle.Render("Loading profile..."))
		} else {
			lines = append(lines, styles.DimStyle.Render("No profile"))
		}
	} else {
		name := styles.TitleStyle.Render(user.Name)
		if m.engine.IsOwner() {
			name += " " + styles.BadgeStyle.Render("you")
		}
		lines = append(lines, name)
		if user.Bio != "" {
			lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(user.Bio, m.Width-2)))
		}
		if img := adapter.UploadURL(m.opts.UploadURL, adapter.UploadUsers, user.ProfileImage); img != "" {
			lines = append(lines, styles.DimStyle.Render(img))
		}
	}

	if msg, ok := profile.Message(); ok {
		lines = append(lines, renderMessage(msg))
	}
	if err := profile.Err(); err != "" {
		lines = append(lines, styles.ErrorStyle.Render(err))
	}

	return strings.Join(lines, "\n") + "\n"
}

// renderPhotoForm renders whichever photo form is visible, with the
// collection's scoped message or error underneath
func (m Model) renderPhotoForm() string {
	var form string
	if m.engine.Form().EditVisible() {
		form = m.EditForm.View()
	} else {
		form = m.CreateForm.View()
	}

	photos := m.engine.Photos()
	lines := []string{form}
	if msg, ok := photos.Message(); ok {
		lines = append(lines, renderMessage(msg))
	}
	if err := photos.Err(); err != "" {
		lines = append(lines, styles.ErrorStyle.Render(err))
	}
	return strings.Join(lines, "\n")
}

// renderSelected renders the image URL of the photo under the cursor
func (m Model) renderSelected() string {
	photo, ok := m.List.Selected()
	if !ok {
		return ""
	}
	lines := []string{styles.TitleStyle.Render(styles.Truncate(photo.Title, m.Width/2))}
	if img := adapter.UploadURL(m.opts.UploadURL, adapter.UploadPhotos, photo.Image); img != "" {
		lines = append(lines, styles.DimStyle.Render(img))
	}
	if photo.UserName != "" {
		lines = append(lines, styles.DimStyle.Render("by "+photo.UserName))
	}
	return strings.Join(lines, "\n")
}

func renderMessage(msg state.Message) string {
	if msg.IsError() {
		return styles.ErrorStyle.Render(msg.Text)
	}
	return styles.SuccessStyle.Render(msg.Text)
}

// loading reports whether any request is in flight
func (m Model) loading() bool {
	t := m.engine.Tracker()
	return t.Loading(state.CategoryProfileRead) ||
		t.Loading(state.CategoryProfileWrite) ||
		t.Loading(state.CategoryPhotoRead) ||
		t.Loading(state.CategoryPhotoWrite)
}

// renderFooter renders a single-line footer
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.DimStyle.Render(m.StatusMsg)
	case m.loading():
		left = styles.DimStyle.Render("Loading...")
	default:
		left = m.Help.View(Keys)
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true
	body := styles.ModalTitleStyle.Render("Keys") + "\n" + h.View(Keys) +
		"\n\n" + styles.DimStyle.Render("Press esc to return...")
	return m.renderCentered(styles.ModalStyle.Render(body))
}

// renderDeleteConfirmation renders the account deletion modal
func (m Model) renderDeleteConfirmation() string {
	modal := `
          Delete Account?

  This removes your profile and photos
  and signs you out.

        [Y] Yes      [N] No
`
	return m.renderCentered(styles.ModalStyle.Render(modal))
}

func (m Model) renderCentered(s string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, s)
}
