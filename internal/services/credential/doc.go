// Package credential manages the signed-in mail account and its saved
// password.
//
// It enforces the address and password policy, records the session, and
// routes password saves and loads through the domain.CredentialProtector.
// Calls touching one account are serialised; different accounts proceed in
// parallel. When a legacy store is configured, loads fall back to it after
// the protected credential fails to read.
package credential
