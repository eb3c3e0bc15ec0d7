// Package static provides an in-memory CredentialStore backed by a fixed map.
package static

import (
	"context"
	"fmt"
	"strings"

	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = Store(nil)

// Store maps usernames to passwords. It is never mutated after construction
// and never fails.
type Store map[string]string

// Lookup reports whether username exists and its password matches exactly.
func (s Store) Lookup(_ context.Context, username, password string) (bool, error) {
	stored, ok := s[username]
	if !ok {
		return false, nil
	}
	return stored == password, nil
}

// Parse builds a Store from a comma-separated list of username:password pairs.
// The password is everything after the first colon, so it may itself contain
// colons. Whitespace is significant.
func Parse(raw string) (Store, error) {
	s := Store{}
	if raw == "" {
		return s, nil
	}

	for _, entry := range strings.Split(raw, ",") {
		username, password, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("parse static user %q: missing ':' separator", username)
		}
		if _, dup := s[username]; dup {
			return nil, fmt.Errorf("parse static user %q: duplicate username", username)
		}
		s[username] = password
	}
	return s, nil
}
