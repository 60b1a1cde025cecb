package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusDelay is how long a footer hint stays visible
const statusDelay = 2 * time.Second

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// StatusCmd shows a footer hint from outside Update
func StatusCmd(message string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: message, IsError: isErr}
	}
}
