package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"mailguard/internal/domain"
)

const sessionFilename = "session.json"

// SessionFileStore persists the signed-in session to disk.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// Path returns the session file location.
func (s *SessionFileStore) Path() string { return filepath.Join(s.dir, sessionFilename) }

// SaveSession replaces the stored session.
func (s *SessionFileStore) SaveSession(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(), session, 0o600)
}

// LoadSession returns the stored session; ok is false when none exists.
func (s *SessionFileStore) LoadSession() (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var session domain.Session
	ok, err := readJSON(s.Path(), &session)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("read session: %w", err)
	}
	if !ok || session.Email.Empty() {
		return domain.Session{}, false, nil
	}
	return session, true, nil
}

// ClearSession removes the stored session.
func (s *SessionFileStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.Path())
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
