package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"mailguard/internal/domain"
	"mailguard/internal/util/memzero"
)

const legacyFilename = "legacy.json"

// legacyContext separates the envelope key from any other use of the address.
const legacyContext = "mailguard/legacy/v1:"

// LegacyFileStore keeps a per-account fallback copy of the password. The
// envelope key is derived from the account address, so anyone who can read
// the file and guess the address can open it.
type LegacyFileStore struct {
	dir     string
	mu      sync.Mutex
	N, R, P int
}

// NewLegacyFileStore returns a LegacyFileStore rooted at dir.
func NewLegacyFileStore(dir string) *LegacyFileStore {
	N, r, p := scryptParamsDefault()
	return &LegacyFileStore{dir: dir, N: N, R: r, P: p}
}

// Path returns the legacy file location.
func (s *LegacyFileStore) Path() string { return filepath.Join(s.dir, legacyFilename) }

func legacySecret(user domain.UserID) []byte {
	return []byte(legacyContext + user.String())
}

func (s *LegacyFileStore) load() (map[domain.UserID]envelope, error) {
	m := make(map[domain.UserID]envelope)
	if _, err := readJSON(s.Path(), &m); err != nil {
		return nil, fmt.Errorf("read legacy store: %w", err)
	}
	return m, nil
}

// SaveLegacyPassword stores password for user, replacing any prior value.
func (s *LegacyFileStore) SaveLegacyPassword(user domain.UserID, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	raw := []byte(password)
	defer memzero.Zero(raw)

	secret := legacySecret(user)
	env, err := seal(secret, user.Bytes(), raw, s.N, s.R, s.P)
	if err != nil {
		return err
	}
	m[user] = env
	return writeJSON(s.Path(), m, 0o600)
}

// LoadLegacyPassword returns the stored password for user; ok is false when
// the user has no entry.
func (s *LegacyFileStore) LoadLegacyPassword(user domain.UserID) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return "", false, err
	}
	env, ok := m[user]
	if !ok {
		return "", false, nil
	}
	pt, err := open(legacySecret(user), user.Bytes(), env)
	if err != nil {
		return "", false, err
	}
	defer memzero.Zero(pt)
	return string(pt), true, nil
}

// DeleteLegacyPassword removes user's entry, and the file once it is empty.
func (s *LegacyFileStore) DeleteLegacyPassword(user domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := m[user]; !ok {
		return nil
	}
	delete(m, user)
	if len(m) == 0 {
		return removeFile(s.Path())
	}
	return writeJSON(s.Path(), m, 0o600)
}

// Compile-time assertion that LegacyFileStore implements domain.LegacyStore.
var _ domain.LegacyStore = (*LegacyFileStore)(nil)
