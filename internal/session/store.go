package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// FileStore persists the session cookies between process runs. It is the
// CLI's authentication marker: the only thing this client ever writes to
// disk. Everything else lives in memory for the life of the process.
type FileStore struct {
	Path string
}

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// DefaultStorePath places the marker under the user's home directory
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cliento-session.json"
	}
	return filepath.Join(home, ".cliento", "session.json")
}

// Load reads the saved cookies; a missing file yields none
func (s *FileStore) Load() ([]*http.Cookie, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		if !c.Expires.IsZero() && c.Expires.Before(time.Now()) {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Expires: c.Expires,
		})
	}
	return cookies, nil
}

// Save writes the current cookies, creating the directory if needed
func (s *FileStore) Save(cookies []*http.Cookie) error {
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Expires: c.Expires,
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the marker; missing is fine
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
