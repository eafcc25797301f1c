package device

import (
	"errors"
	"strings"

	"github.com/denisbrodbeck/machineid"

	"mailguard/internal/domain"
)

const op = "device id"

// ErrUnavailable is returned when the platform yields no identifier.
var ErrUnavailable = errors.New("device identifier unavailable")

// Machine reads the raw platform machine ID.
//
// The raw ID is used, not machineid.ProtectedID, because existing stored
// credentials were derived from the raw value.
type Machine struct{}

// DeviceID returns the trimmed platform machine ID.
func (Machine) DeviceID() (domain.DeviceID, error) {
	id, err := machineid.ID()
	if err != nil {
		return "", domain.NewError(domain.KindEncryptionFailed, op, err)
	}
	return checked(id)
}

// Static is a fixed identifier.
type Static string

// DeviceID returns s, or EncryptionFailed when s is empty.
func (s Static) DeviceID() (domain.DeviceID, error) { return checked(string(s)) }

// Func adapts a function to a DeviceIdentitySource.
type Func func() (string, error)

// DeviceID calls f and classifies its failure as EncryptionFailed.
func (f Func) DeviceID() (domain.DeviceID, error) {
	id, err := f()
	if err != nil {
		return "", domain.AsKind(domain.KindEncryptionFailed, op, err)
	}
	return checked(id)
}

func checked(id string) (domain.DeviceID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.NewError(domain.KindEncryptionFailed, op, ErrUnavailable)
	}
	return domain.DeviceID(id), nil
}

// Compile-time assertions that the sources implement domain.DeviceIdentitySource.
var (
	_ domain.DeviceIdentitySource = Machine{}
	_ domain.DeviceIdentitySource = Static("")
	_ domain.DeviceIdentitySource = Func(nil)
)
