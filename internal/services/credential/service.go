package credential

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mailguard/internal/domain"
)

const (
	// minPasswordLength defines the minimum number of characters required for a password.
	minPasswordLength = 6

	// DefaultSessionTTL is how long a login stays valid.
	DefaultSessionTTL = time.Hour

	// DefaultMailDomain is the only domain accepted unless configured otherwise.
	DefaultMailDomain = "2925.com"
)

var (
	// ErrInvalidEmail is returned when the address is malformed or outside the
	// accepted domain.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when the password fails the length policy.
	ErrWeakPassword = fmt.Errorf("password must be at least %d characters", minPasswordLength)

	// ErrNoSession is returned when no account is signed in.
	ErrNoSession = errors.New("not signed in")

	// ErrSessionExpired is returned when the stored session is past expiry.
	ErrSessionExpired = errors.New("session expired, sign in again")
)

// Options tunes a Service.
type Options struct {
	// MailDomain restricts accepted addresses; empty accepts any domain.
	MailDomain string
	// SessionTTL is the lifetime of a new session.
	SessionTTL time.Duration
	// Legacy is the compatibility store; nil disables the fallback.
	Legacy domain.LegacyStore
	// Now overrides the clock.
	Now func() time.Time
}

// Service manages the signed-in account and its protected password.
type Service struct {
	protector domain.CredentialProtector
	sessions  domain.SessionStore
	legacy    domain.LegacyStore
	log       *zap.Logger

	mailDomain string
	ttl        time.Duration
	now        func() time.Time

	locks accountLocks
}

// New returns a credential service backed by the given protector and
// session store.
func New(p domain.CredentialProtector, sessions domain.SessionStore, log *zap.Logger, opts Options) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		protector:  p,
		sessions:   sessions,
		legacy:     opts.Legacy,
		log:        log.Named("credential"),
		mailDomain: strings.ToLower(strings.TrimPrefix(opts.MailDomain, "@")),
		ttl:        opts.SessionTTL,
		now:        opts.Now,
	}
}

// Login validates email and password, protects the password, and records a
// new session. The previous session is kept if protection fails.
func (s *Service) Login(email domain.UserID, password string) (domain.Session, error) {
	email, err := s.normalizeEmail(email)
	if err != nil {
		return domain.Session{}, err
	}
	if err := checkPassword(password); err != nil {
		return domain.Session{}, err
	}

	unlock := s.locks.lock(email)
	defer unlock()

	if err := s.protect(email, password); err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		Email:     email,
		Token:     "token_" + uuid.NewString(),
		ExpiresAt: s.now().Add(s.ttl).Unix(),
	}
	if err := s.sessions.SaveSession(session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.log.Info("signed in", zap.String("account", email.String()), zap.Time("expires", session.ExpiresAtTime()))
	return session, nil
}

// Logout clears the session. With forget, the protected and legacy
// credentials are removed as well.
func (s *Service) Logout(forget bool) error {
	session, ok, err := s.sessions.LoadSession()
	if err != nil {
		return err
	}
	if ok && forget {
		if err := s.Forget(session.Email); err != nil && domain.KindOf(err) != domain.KindKeyring {
			return err
		}
	}
	if err := s.sessions.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if ok {
		s.log.Info("signed out", zap.String("account", session.Email.String()), zap.Bool("forget", forget))
	}
	return nil
}

// CurrentSession returns the stored session, expired or not.
func (s *Service) CurrentSession() (domain.Session, bool, error) {
	return s.sessions.LoadSession()
}

// SavePassword protects password for the signed-in account.
func (s *Service) SavePassword(password string) error {
	session, err := s.activeSession()
	if err != nil {
		return err
	}
	if err := checkPassword(password); err != nil {
		return err
	}

	unlock := s.locks.lock(session.Email)
	defer unlock()
	return s.protect(session.Email, password)
}

// LoadPassword reveals the password of the signed-in account.
func (s *Service) LoadPassword() (string, error) {
	session, err := s.activeSession()
	if err != nil {
		return "", err
	}

	unlock := s.locks.lock(session.Email)
	defer unlock()

	account := zap.String("account", session.Email.String())
	password, err := s.protector.Reveal(session.Email)
	if err == nil {
		return password, nil
	}
	s.log.Warn("protected credential unreadable", account,
		zap.Stringer("kind", domain.KindOf(err)), zap.Error(err))

	if s.legacy == nil {
		return "", err
	}
	legacy, ok, lerr := s.legacy.LoadLegacyPassword(session.Email)
	if lerr != nil {
		s.log.Warn("legacy credential unreadable", account, zap.Error(lerr))
		return "", err
	}
	if !ok {
		return "", err
	}
	s.log.Warn("using legacy credential fallback", account)
	return legacy, nil
}

// Forget removes the protected credential, and the legacy copy when a legacy
// store is configured, for email.
func (s *Service) Forget(email domain.UserID) error {
	email, err := s.normalizeEmail(email)
	if err != nil {
		return err
	}

	unlock := s.locks.lock(email)
	defer unlock()

	if s.legacy != nil {
		if err := s.legacy.DeleteLegacyPassword(email); err != nil {
			s.log.Warn("legacy credential not removed", zap.String("account", email.String()), zap.Error(err))
		}
	}
	if err := s.protector.Forget(email); err != nil {
		s.log.Warn("forget failed", zap.String("account", email.String()),
			zap.Stringer("kind", domain.KindOf(err)), zap.Error(err))
		return err
	}
	s.log.Info("credential forgotten", zap.String("account", email.String()))
	return nil
}

// protect runs the protector and, when configured, refreshes the legacy copy.
// The caller holds the account lock.
func (s *Service) protect(email domain.UserID, password string) error {
	account := zap.String("account", email.String())
	if err := s.protector.Protect(password, email); err != nil {
		s.log.Error("protect failed", account, zap.Stringer("kind", domain.KindOf(err)), zap.Error(err))
		return err
	}
	if s.legacy != nil {
		if err := s.legacy.SaveLegacyPassword(email, password); err != nil {
			s.log.Warn("legacy credential not written", account, zap.Error(err))
		}
	}
	s.log.Debug("credential protected", account)
	return nil
}

func (s *Service) activeSession() (domain.Session, error) {
	session, ok, err := s.sessions.LoadSession()
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, ErrNoSession
	}
	if session.Expired(s.now()) {
		return domain.Session{}, ErrSessionExpired
	}
	return session, nil
}

// normalizeEmail checks the address shape and domain policy.
func (s *Service) normalizeEmail(email domain.UserID) (domain.UserID, error) {
	raw := strings.TrimSpace(email.String())
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	if s.mailDomain != "" && !strings.HasSuffix(strings.ToLower(raw), "@"+s.mailDomain) {
		return "", fmt.Errorf("%w: must be an @%s address", ErrInvalidEmail, s.mailDomain)
	}
	return domain.UserID(raw), nil
}

// checkPassword enforces the length policy.
func checkPassword(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// accountLocks hands out one mutex per account.
type accountLocks struct {
	mu sync.Mutex
	m  map[domain.UserID]*sync.Mutex
}

func (l *accountLocks) lock(account domain.UserID) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[domain.UserID]*sync.Mutex)
	}
	m, ok := l.m[account]
	if !ok {
		m = &sync.Mutex{}
		l.m[account] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// Compile-time assertion that Service implements domain.CredentialService.
var _ domain.CredentialService = (*Service)(nil)
