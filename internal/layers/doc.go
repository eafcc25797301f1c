// Package layers implements the two nested encryption layers applied to a
// saved password before it reaches the secret store.
//
// Both layers share one framing:
//
//	[0,32)   salt
//	[32,44)  nonce
//	[44,end) AES-256-GCM ciphertext with appended 16-byte tag
//
// There is no length prefix or version byte; the salt and nonce sizes and
// the iteration counts are part of the stored format and must not change.
//
// The device-bound layer derives its key from the device identity followed
// by the user identity at DeviceBoundIterations. The user-bound layer derives
// its key from the user identity alone at UserBoundIterations and wraps the
// device-bound output.
package layers
