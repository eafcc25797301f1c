package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"mailguard/internal/domain"
)

func TestCredentialError_IsMatchesOnlyItsKind(t *testing.T) {
	sentinels := map[domain.Kind]error{
		domain.KindEncryptionFailed: domain.ErrEncryptionFailed,
		domain.KindDecryptionFailed: domain.ErrDecryptionFailed,
		domain.KindKeyring:          domain.ErrKeyringError,
		domain.KindInvalidData:      domain.ErrInvalidData,
	}

	for kind, want := range sentinels {
		t.Run(kind.String(), func(t *testing.T) {
			err := fmt.Errorf("outer: %w", domain.NewError(kind, "op", errors.New("cause")))
			for other, sentinel := range sentinels {
				got := errors.Is(err, sentinel)
				if got != (sentinel == want) {
					t.Fatalf("errors.Is(%v, %v) = %v for kind %v", err, sentinel, got, other)
				}
			}
			if domain.KindOf(err) != kind {
				t.Fatalf("KindOf = %v, want %v", domain.KindOf(err), kind)
			}
		})
	}
}

func TestCredentialError_UnwrapsCause(t *testing.T) {
	cause := errors.New("platform said no")
	err := domain.NewError(domain.KindKeyring, "keystore put", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if got, want := err.Error(), "keystore put: keyring error: platform said no"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCredentialError_NilCause(t *testing.T) {
	err := domain.NewError(domain.KindDecryptionFailed, "user-bound decrypt", nil)
	if got, want := err.Error(), "user-bound decrypt: decryption failed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestKindOf_Unknown(t *testing.T) {
	if k := domain.KindOf(errors.New("plain")); k != domain.KindUnknown {
		t.Fatalf("KindOf = %v, want Unknown", k)
	}
	if k := domain.KindOf(nil); k != domain.KindUnknown {
		t.Fatalf("KindOf(nil) = %v, want Unknown", k)
	}
}

func TestAsKind_KeepsExistingKind(t *testing.T) {
	inner := domain.NewError(domain.KindEncryptionFailed, "device id", errors.New("no machine id"))
	got := domain.AsKind(domain.KindDecryptionFailed, "device-bound decrypt", inner)
	if domain.KindOf(got) != domain.KindEncryptionFailed {
		t.Fatalf("kind was rewritten to %v", domain.KindOf(got))
	}

	plain := domain.AsKind(domain.KindInvalidData, "decode", errors.New("bad"))
	if !errors.Is(plain, domain.ErrInvalidData) {
		t.Fatalf("expected InvalidData, got %v", plain)
	}
	if domain.AsKind(domain.KindInvalidData, "decode", nil) != nil {
		t.Fatal("AsKind(nil) should be nil")
	}
}

func TestKind_Retryable(t *testing.T) {
	cases := []struct {
		kind domain.Kind
		want bool
	}{
		{domain.KindEncryptionFailed, true},
		{domain.KindKeyring, true},
		{domain.KindDecryptionFailed, false},
		{domain.KindInvalidData, false},
		{domain.KindUnknown, false},
	}
	for _, c := range cases {
		if got := c.kind.Retryable(); got != c.want {
			t.Errorf("%v.Retryable() = %v, want %v", c.kind, got, c.want)
		}
	}
}
