package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// UserRepo is the PostgreSQL implementation of the UserStore port interface.
type UserRepo struct {
	pool *Pool
}

// NewUserRepo creates a new UserRepo backed by pool.
func NewUserRepo(pool *Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Add inserts a new user. Returns ErrUserAlreadyExists if the username is taken.
func (r *UserRepo) Add(ctx context.Context, cred model.Credential) error {
	const query = `INSERT INTO users (username, password) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, cred.Username, cred.Password); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("add user %q: %w", cred.Username, driven.ErrUserAlreadyExists)
		}
		return fmt.Errorf("add user %q: %w", cred.Username, err)
	}

	return nil
}

// Remove deletes a user by username. Returns ErrUserNotFound if no row was deleted.
func (r *UserRepo) Remove(ctx context.Context, username string) error {
	const query = `DELETE FROM users WHERE username = $1`

	tag, err := r.pool.Exec(ctx, query, username)
	if err != nil {
		return fmt.Errorf("remove user %q: %w", username, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("remove user %q: %w", username, driven.ErrUserNotFound)
	}

	return nil
}

// List returns all users ordered by username.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, username, created_at FROM users ORDER BY username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
