// Package device supplies the per-machine identifier that binds protected
// credentials to this device.
//
// Machine reads the platform machine ID (dbus/systemd machine-id on Linux,
// IOPlatformUUID on macOS, MachineGuid on Windows). Static and Func exist so
// callers and tests can substitute a deterministic or failing source.
package device
