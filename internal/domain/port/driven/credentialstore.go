package driven

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is wrapped by CredentialStore implementations when the
// backing resource could not be opened, prepared or queried. It is never
// returned for a credential that simply does not match.
var ErrStoreUnavailable = errors.New("credential store unavailable")

// CredentialStore defines the driven port for credential membership checks.
// Implementations acquire the backing resource per call and release it before
// returning, so a single store value is safe for concurrent use.
type CredentialStore interface {
	// Lookup reports whether at least one stored record matches both username
	// and password exactly. A failure to reach the store returns an error
	// wrapping ErrStoreUnavailable.
	Lookup(ctx context.Context, username, password string) (bool, error)
}
