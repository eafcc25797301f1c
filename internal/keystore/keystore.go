package keystore

import (
	"errors"

	"go.uber.org/zap"

	"mailguard/internal/crypto"
	"mailguard/internal/domain"
)

// ServiceName is the secret-store service under which every credential is
// filed. Changing it orphans existing entries.
const ServiceName = "email-manager-2925"

// ErrEmptyAccount is returned when the account key is empty.
var ErrEmptyAccount = errors.New("empty account")

// Store adapts a Backend to domain.SecretStore.
type Store struct {
	backend Backend
	service string
	log     *zap.Logger
}

// New returns a Store filing entries under service. An empty service means
// ServiceName; a nil logger discards output.
func New(backend Backend, service string, log *zap.Logger) *Store {
	if service == "" {
		service = ServiceName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, service: service, log: log.Named("keystore")}
}

// Service returns the service name entries are filed under.
func (s *Store) Service() string { return s.service }

// Put base64-encodes blob and writes it under user, replacing any prior
// value.
func (s *Store) Put(user domain.UserID, blob []byte) error {
	const op = "keystore put"
	if user.Empty() {
		return domain.NewError(domain.KindKeyring, op, ErrEmptyAccount)
	}
	if err := s.backend.Set(s.service, user.String(), crypto.B64(blob)); err != nil {
		s.log.Warn("secret store rejected write", zap.String("account", user.String()), zap.Error(err))
		return domain.NewError(domain.KindKeyring, op, err)
	}
	s.log.Debug("credential stored", zap.String("account", user.String()), zap.Int("bytes", len(blob)))
	return nil
}

// Get reads and decodes the blob stored under user.
func (s *Store) Get(user domain.UserID) ([]byte, error) {
	const op = "keystore get"
	if user.Empty() {
		return nil, domain.NewError(domain.KindKeyring, op, ErrEmptyAccount)
	}
	encoded, err := s.backend.Get(s.service, user.String())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn("secret store read failed", zap.String("account", user.String()), zap.Error(err))
		}
		return nil, domain.NewError(domain.KindKeyring, op, err)
	}
	blob, err := crypto.FromB64(encoded)
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidData, op, err)
	}
	return blob, nil
}

// Delete removes the entry for user.
func (s *Store) Delete(user domain.UserID) error {
	const op = "keystore delete"
	if user.Empty() {
		return domain.NewError(domain.KindKeyring, op, ErrEmptyAccount)
	}
	if err := s.backend.Delete(s.service, user.String()); err != nil {
		return domain.NewError(domain.KindKeyring, op, err)
	}
	s.log.Debug("credential deleted", zap.String("account", user.String()))
	return nil
}

// probeAccount is an account name no mail address can take.
const probeAccount = "mailguard-probe"

// Available reports whether the backend answers reads. A missing entry
// counts as available.
func (s *Store) Available() error {
	_, err := s.backend.Get(s.service, probeAccount)
	if err == nil || errors.Is(err, ErrNotFound) {
		return nil
	}
	return domain.NewError(domain.KindKeyring, "keystore probe", err)
}

// Compile-time assertion that Store implements domain.SecretStore.
var _ domain.SecretStore = (*Store)(nil)
