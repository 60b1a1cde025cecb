package adapter

import (
	"fmt"
	"sync"

	"github.com/mmcdole/foto/internal/domain"
)

// ConfigSession is a domain.Session backed by the config file.
// The token is handed out exactly as configured.
type ConfigSession struct {
	mu  sync.RWMutex
	cfg *Config

	// persist writes the config back; SaveConfig unless overridden in tests
	persist func(*Config) error
}

var _ domain.Session = (*ConfigSession)(nil)

// NewConfigSession creates a session reading credentials from cfg
func NewConfigSession(cfg *Config) *ConfigSession {
	return &ConfigSession{cfg: cfg, persist: SaveConfig}
}

// Token returns the bearer token
func (s *ConfigSession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Session.Token
}

// UserID returns the ID of the user the token belongs to
func (s *ConfigSession) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Session.UserID
}

// Clear removes the session credentials while preserving other settings
func (s *ConfigSession) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Session = SessionConfig{}
	if s.persist == nil {
		return nil
	}
	if err := s.persist(s.cfg); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
