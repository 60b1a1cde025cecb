// Package prefs handles foto user preferences persistence.
// Preferences are stored in ~/.config/foto/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for foto.
type Prefs struct {
	// LastProfile is the profile opened when no -user flag is given.
	LastProfile string `toml:"last_profile"`
}

const defaultPrefsPath = "~/.config/foto/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. A missing or unreadable file
// yields zero preferences; errors are never fatal.
func Load(path string) (Prefs, error) {
	var prefs Prefs

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Prefs{}, nil // Graceful degradation
	}

	prefs.LastProfile = strings.TrimSpace(prefs.LastProfile)
	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
