// Package domain defines the core data models, contracts and error kinds
// shared across mailguard. It contains plain types (types/), interfaces
// (interfaces/) and the credential error taxonomy only.
package domain
