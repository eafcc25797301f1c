package layers

import (
	"errors"

	"mailguard/internal/domain"
)

var (
	// ErrShortBlob is the cause of InvalidData for blobs under HeaderSize.
	ErrShortBlob = errors.New("encrypted blob too short")

	// ErrEmptyUser is returned when the user identity is empty.
	ErrEmptyUser = errors.New("empty user identity")
)

// NewDeviceBound returns layer 1: the key secret is the device identity
// immediately followed by the user identity.
func NewDeviceBound(src domain.DeviceIdentitySource, opts ...Option) *Layer {
	return newLayer("device-bound", DeviceBoundIterations, deviceSecret(src), opts...)
}

// NewUserBound returns layer 2: the key secret is the user identity alone.
func NewUserBound(opts ...Option) *Layer {
	return newLayer("user-bound", UserBoundIterations, userSecret, opts...)
}

func deviceSecret(src domain.DeviceIdentitySource) secretFunc {
	return func(user domain.UserID) ([]byte, error) {
		if user.Empty() {
			return nil, domain.NewError(domain.KindInvalidData, "device-bound secret", ErrEmptyUser)
		}
		id, err := src.DeviceID()
		if err != nil {
			return nil, err
		}
		secret := make([]byte, 0, len(id)+len(user))
		secret = append(secret, id...)
		return append(secret, user...), nil
	}
}

func userSecret(user domain.UserID) ([]byte, error) {
	if user.Empty() {
		return nil, domain.NewError(domain.KindInvalidData, "user-bound secret", ErrEmptyUser)
	}
	return []byte(user), nil
}
