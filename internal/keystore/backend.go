package keystore

import (
	"errors"
	"sync"

	"github.com/zalando/go-keyring"
)

// ErrNotFound is returned by a Backend when no entry exists.
var ErrNotFound = errors.New("secret not found")

// Backend is the minimal platform secret-store surface: one string value per
// (service, account) pair.
type Backend interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// OSBackend talks to the platform keyring.
type OSBackend struct{}

// Get reads the value for (service, account).
func (OSBackend) Get(service, account string) (string, error) {
	v, err := keyring.Get(service, account)
	return v, translate(err)
}

// Set writes value for (service, account), replacing any previous value.
func (OSBackend) Set(service, account, value string) error {
	return translate(keyring.Set(service, account, value))
}

// Delete removes the entry for (service, account).
func (OSBackend) Delete(service, account string) error {
	return translate(keyring.Delete(service, account))
}

func translate(err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// MemoryBackend is an in-process Backend for tests and keyring-less
// environments. It is safe for concurrent use.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]string)}
}

func memKey(service, account string) string { return service + "\x00" + account }

// Get reads the value for (service, account).
func (m *MemoryBackend) Get(service, account string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[memKey(service, account)]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set writes value for (service, account).
func (m *MemoryBackend) Set(service, account, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[memKey(service, account)] = value
	return nil
}

// Delete removes the entry for (service, account).
func (m *MemoryBackend) Delete(service, account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memKey(service, account)
	if _, ok := m.entries[k]; !ok {
		return ErrNotFound
	}
	delete(m.entries, k)
	return nil
}

// Len returns the number of stored entries.
func (m *MemoryBackend) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Compile-time assertions that the backends implement Backend.
var (
	_ Backend = OSBackend{}
	_ Backend = (*MemoryBackend)(nil)
)
