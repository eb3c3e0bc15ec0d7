package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the PostgreSQL implementation of the CredentialStore port.
// Each Lookup dials its own connection and closes it before returning.
type CredentialRepo struct {
	connString string
}

// NewCredentialRepo creates a CredentialRepo for connString. The string is
// not parsed until the first Lookup, so a malformed value surfaces as
// ErrStoreUnavailable there.
func NewCredentialRepo(connString string) *CredentialRepo {
	return &CredentialRepo{connString: connString}
}

// Lookup reports whether a users row matches both username and password.
func (r *CredentialRepo) Lookup(ctx context.Context, username, password string) (bool, error) {
	conn, err := pgx.Connect(ctx, r.connString)
	if err != nil {
		return false, fmt.Errorf("%w: connect: %w", driven.ErrStoreUnavailable, err)
	}
	defer func() {
		// Close must run even when ctx is already done.
		_ = conn.Close(context.WithoutCancel(ctx))
	}()

	const query = `SELECT 1 FROM users WHERE username = $1 AND password = $2 LIMIT 1`
	var one int
	err = conn.QueryRow(ctx, query, username, password).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: lookup %q: %w", driven.ErrStoreUnavailable, username, err)
	}

	return true, nil
}
