// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/place, domain/project,
// domain/catalog). This root package holds the sentinel errors, the typed
// travel errors that wrap them, and the Optional field type used by partial
// updates.
package domain
