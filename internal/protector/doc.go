// Package protector composes the credential pipeline.
//
// Protect runs the device-bound layer, then the user-bound layer, then writes
// the result to the secret store. Reveal reads the store, unwraps the
// user-bound layer, then the device-bound layer, and checks the result is
// UTF-8. Forget deletes the stored entry.
//
// The Protector holds no state between calls. Error kinds raised by any stage
// are returned unchanged.
package protector
