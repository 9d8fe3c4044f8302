package device

import "github.com/portal360/admin-api/internal/pkg/id"

// Header is the per-browser device identifier header the portal client
// sends with every request. The server records it on sessions so a stolen
// refresh token used from another browser is distinguishable.
const Header = "X-Device-Id"

// NewUUID generates a fresh device identifier for a client installation
// that has none yet.
func NewUUID() string {
	return id.New()
}

// Resolve returns the supplied device id when present, otherwise a new one.
func Resolve(existing string) string {
	if existing != "" {
		return existing
	}
	return NewUUID()
}
