package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port.
// Every Lookup opens the database file read-only, runs one query and closes
// the handle again; nothing is shared between calls except the file path.
type CredentialRepo struct {
	dsn string
}

// NewCredentialRepo creates a CredentialRepo for the database file at dbPath.
// The file is not touched until the first Lookup. A missing file is reported
// as ErrStoreUnavailable rather than created.
func NewCredentialRepo(dbPath string) *CredentialRepo {
	return &CredentialRepo{
		dsn: fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", dbPath),
	}
}

// Lookup reports whether a users row matches both username and password.
func (r *CredentialRepo) Lookup(ctx context.Context, username, password string) (found bool, err error) {
	db, err := sql.Open("sqlite", r.dsn)
	if err != nil {
		return false, fmt.Errorf("%w: open: %w", driven.ErrStoreUnavailable, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			found, err = false, fmt.Errorf("%w: close: %w", driven.ErrStoreUnavailable, closeErr)
		}
	}()
	db.SetMaxOpenConns(1)

	const query = `SELECT 1 FROM users WHERE username = ? AND password = ? LIMIT 1`
	var one int
	err = db.QueryRowContext(ctx, query, username, password).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: lookup %q: %w", driven.ErrStoreUnavailable, username, err)
	}

	return true, nil
}
