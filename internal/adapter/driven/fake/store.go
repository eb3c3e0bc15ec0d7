// Package fake provides a scripted CredentialStore for tests. It performs no
// I/O; every answer is configured up front.
package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*Store)(nil)

// Answer is one scripted reply to Lookup.
type Answer struct {
	Found bool
	Err   error
}

// Store replays its answers one per Lookup call. Once the script is exhausted
// the last answer repeats. An empty script answers (false, nil).
type Store struct {
	mu      sync.Mutex
	answers []Answer
	calls   []model.Credential
}

// NewStore creates a Store that replays answers in order.
func NewStore(answers ...Answer) *Store {
	return &Store{answers: answers}
}

// Found returns a Store that always reports a match.
func Found() *Store {
	return NewStore(Answer{Found: true})
}

// NotFound returns a Store that always reports no match.
func NotFound() *Store {
	return NewStore(Answer{Found: false})
}

// Unavailable returns a Store whose every lookup fails with an error wrapping
// driven.ErrStoreUnavailable and cause.
func Unavailable(cause error) *Store {
	return NewStore(Answer{Err: fmt.Errorf("%w: %w", driven.ErrStoreUnavailable, cause)})
}

// Lookup records the call and returns the next scripted answer.
func (s *Store) Lookup(_ context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, model.Credential{Username: username, Password: password})

	if len(s.answers) == 0 {
		return false, nil
	}

	idx := len(s.calls) - 1
	if idx >= len(s.answers) {
		idx = len(s.answers) - 1
	}
	a := s.answers[idx]
	return a.Found, a.Err
}

// Calls returns a copy of the credentials passed to Lookup, in call order.
func (s *Store) Calls() []model.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Credential, len(s.calls))
	copy(out, s.calls)
	return out
}
