package state

import "github.com/mmcdole/foto/internal/domain"

// ProfileStore holds the single current user.
// Readers get copies; only the Engine mutates it.
type ProfileStore struct {
	user    domain.User
	err     string
	message *Message
}

func newProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// User returns the current user, the empty entity when none is loaded
func (s *ProfileStore) User() domain.User {
	return s.user
}

// Err returns the text of the last failure, "" after a success
func (s *ProfileStore) Err() string {
	return s.err
}

// Message returns the transient message, if one is showing
func (s *ProfileStore) Message() (Message, bool) {
	if s.message == nil {
		return Message{}, false
	}
	return *s.message, true
}

func (s *ProfileStore) replace(u domain.User) {
	s.user = u
	s.err = ""
}

// reset drops the user to the empty entity
func (s *ProfileStore) reset() {
	s.user = domain.User{}
}

func (s *ProfileStore) fail(text string) {
	s.err = text
}

func (s *ProfileStore) clearErr() {
	s.err = ""
}

func (s *ProfileStore) setMessage(m Message) {
	s.message = &m
}

func (s *ProfileStore) clearMessage() {
	s.message = nil
}
