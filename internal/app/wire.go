package app

import (
	"go.uber.org/zap"

	"mailguard/internal/device"
	"mailguard/internal/domain"
	"mailguard/internal/keystore"
	"mailguard/internal/layers"
	"mailguard/internal/protector"
	"mailguard/internal/services/credential"
	"mailguard/internal/store"
)

// Wire bundles all stores, layers and services for the CLI.
type Wire struct {
	Device      domain.DeviceIdentitySource
	DeviceBound *layers.Layer
	UserBound   *layers.Layer
	Secrets     *keystore.Store
	Protector   domain.CredentialProtector
	Sessions    domain.SessionStore
	Legacy      domain.LegacyStore // nil unless LegacyFallback is set
	Credentials domain.CredentialService
}

// WireOption replaces a platform dependency, mainly for tests.
type WireOption func(*wireDeps)

type wireDeps struct {
	device  domain.DeviceIdentitySource
	backend keystore.Backend
}

// WithDevice replaces the machine ID source.
func WithDevice(src domain.DeviceIdentitySource) WireOption {
	return func(d *wireDeps) { d.device = src }
}

// WithBackend replaces the OS keyring backend.
func WithBackend(b keystore.Backend) WireOption {
	return func(d *wireDeps) { d.backend = b }
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger, opts ...WireOption) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	deps := wireDeps{device: device.Machine{}, backend: keystore.OSBackend{}}
	for _, o := range opts {
		o(&deps)
	}

	// Protection pipeline
	deviceBound := layers.NewDeviceBound(deps.device)
	userBound := layers.NewUserBound()
	secrets := keystore.New(deps.backend, cfg.Service, log)
	prot := protector.New(deviceBound, userBound, secrets)

	// File-based stores
	sessions := store.NewSessionFileStore(cfg.Home)
	var legacy domain.LegacyStore
	if cfg.LegacyFallback {
		legacy = store.NewLegacyFileStore(cfg.Home)
	}

	// High-level services
	creds := credential.New(prot, sessions, log, credential.Options{
		MailDomain: cfg.MailDomain,
		SessionTTL: cfg.SessionTTL,
		Legacy:     legacy,
	})

	return &Wire{
		Device:      deps.device,
		DeviceBound: deviceBound,
		UserBound:   userBound,
		Secrets:     secrets,
		Protector:   prot,
		Sessions:    sessions,
		Legacy:      legacy,
		Credentials: creds,
	}, nil
}
