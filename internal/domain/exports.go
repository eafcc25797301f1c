package domain

import (
	interfaces "mailguard/internal/domain/interfaces"
	types "mailguard/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	UserID   = types.UserID
	DeviceID = types.DeviceID
	Session  = types.Session
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DeviceIdentitySource = interfaces.DeviceIdentitySource
	ProtectionLayer      = interfaces.ProtectionLayer
	SecretStore          = interfaces.SecretStore
	SessionStore         = interfaces.SessionStore
	LegacyStore          = interfaces.LegacyStore
	CredentialProtector  = interfaces.CredentialProtector
	CredentialService    = interfaces.CredentialService
)
