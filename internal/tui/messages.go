package tui

// Message types for the TUI. Remote results arrive as state package messages.

// StatusMsg sets a temporary footer message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the footer message
type ClearStatusMsg struct{}
