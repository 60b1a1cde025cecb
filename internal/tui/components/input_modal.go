package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/foto/internal/tui/styles"
)

// Field describes one text input of an InputModal
type Field struct {
	Label       string
	Placeholder string
	CharLimit   int
	Secret      bool // Echo as bullets (passwords)
}

// InputEvent is what an InputModal update produced
type InputEvent int

const (
	InputNone InputEvent = iota
	InputChanged
	InputSubmitted
	InputCancelled
)

// InputModal is a titled group of text inputs. Tab cycles the fields,
// enter submits and esc cancels.
type InputModal struct {
	title  string
	fields []Field
	inputs []textinput.Model
	focus  int
	active bool
	width  int
}

// NewInputModal creates an input modal with the given fields
func NewInputModal(title string, fields ...Field) InputModal {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = f.CharLimit
		if ti.CharLimit == 0 {
			ti.CharLimit = 256
		}
		ti.Width = 40
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}

	return InputModal{
		title:  title,
		fields: fields,
		inputs: inputs,
		width:  44,
	}
}

// Focus activates the modal on its first field
func (m *InputModal) Focus() {
	m.active = true
	m.focusField(0)
}

// Blur deactivates the modal, keeping its values
func (m *InputModal) Blur() {
	m.active = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// Focused returns whether the modal receives keys
func (m InputModal) Focused() bool {
	return m.active
}

func (m *InputModal) focusField(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// Value returns the trimmed value of field i
func (m InputModal) Value(i int) string {
	if i < 0 || i >= len(m.inputs) {
		return ""
	}
	return strings.TrimSpace(m.inputs[i].Value())
}

// SetValue replaces the value of field i
func (m *InputModal) SetValue(i int, v string) {
	if i < 0 || i >= len(m.inputs) {
		return
	}
	m.inputs[i].SetValue(v)
}

// Reset clears every field
func (m *InputModal) Reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focusField(0)
}

// SetWidth sets the rendered width
func (m *InputModal) SetWidth(w int) {
	if w < 20 {
		w = 20
	}
	m.width = w
	for i := range m.inputs {
		m.inputs[i].Width = w - 4
	}
}

// Update handles input events while focused
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, InputEvent) {
	if !m.active {
		return m, nil, InputNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, InputSubmitted
		case "esc":
			return m, nil, InputCancelled
		case "tab", "down":
			m.focusField(m.focus + 1)
			return m, nil, InputNone
		case "shift+tab", "up":
			m.focusField(m.focus - 1)
			return m, nil, InputNone
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		return m, cmd, InputChanged
	}
	return m, cmd, InputNone
}

// View renders the modal
func (m InputModal) View() string {
	border := styles.InactiveBorder
	if m.active {
		border = styles.ActiveBorder
	}

	lines := []string{styles.TitleStyle.Render(m.title), ""}
	for i, f := range m.fields {
		label := styles.DimStyle.Render(f.Label)
		if m.active && i == m.focus {
			label = styles.AccentStyle.Render(f.Label)
		}
		lines = append(lines, label, m.inputs[i].View())
	}

	return border.
		Width(m.width).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
