package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultMessageDelay is how long a transient message stays visible
const DefaultMessageDelay = 2 * time.Second

// MessageKind tells success text from error text
type MessageKind int

const (
	MessageSuccess MessageKind = iota
	MessageError
)

// Message is a transient success or error text
type Message struct {
	Text     string
	Kind     MessageKind
	Deadline time.Time // When the armed timer is due to clear it
}

// IsError reports whether the message reports a failure
func (m Message) IsError() bool {
	return m.Kind == MessageError
}

// Scope selects which store's message a timer clears
type Scope int

const (
	ScopeProfile Scope = iota
	ScopePhotos
)

func (s Scope) String() string {
	if s == ScopeProfile {
		return "profile"
	}
	return "photos"
}

// MessageExpiredMsg is delivered when an armed timer fires
type MessageExpiredMsg struct {
	Scope Scope
	At    time.Time
}

// Dismisser schedules one-shot clearing of transient messages.
// Timers are never cancelled: two arms within the delay leave two timers
// pending and the first to fire clears whatever message is current.
type Dismisser struct {
	delay time.Duration
	now   func() time.Time
}

// NewDismisser creates a dismisser; a non-positive delay uses DefaultMessageDelay
func NewDismisser(delay time.Duration) *Dismisser {
	if delay <= 0 {
		delay = DefaultMessageDelay
	}
	return &Dismisser{delay: delay, now: time.Now}
}

// Delay returns the configured message lifetime
func (d *Dismisser) Delay() time.Duration {
	return d.delay
}

// Deadline returns when a timer armed now will fire
func (d *Dismisser) Deadline() time.Time {
	return d.now().Add(d.delay)
}

// Arm returns a command that reports MessageExpiredMsg for scope after the delay
func (d *Dismisser) Arm(scope Scope) tea.Cmd {
	return tea.Tick(d.delay, func(t time.Time) tea.Msg {
		return MessageExpiredMsg{Scope: scope, At: t}
	})
}
