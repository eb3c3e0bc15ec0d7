package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// UserRepo is the SQLite implementation of the UserStore port interface.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new UserRepo backed by the given DB.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Add inserts a new user. Returns ErrUserAlreadyExists if the username is taken.
func (r *UserRepo) Add(ctx context.Context, cred model.Credential) error {
	const query = `INSERT INTO users (username, password) VALUES (?, ?)`

	_, err := r.db.Writer.ExecContext(ctx, query, cred.Username, cred.Password)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("add user %q: %w", cred.Username, driven.ErrUserAlreadyExists)
		}
		return fmt.Errorf("add user %q: %w", cred.Username, err)
	}

	return nil
}

// Remove deletes a user by username. Returns ErrUserNotFound if no row was deleted.
func (r *UserRepo) Remove(ctx context.Context, username string) error {
	const query = `DELETE FROM users WHERE username = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("remove user %q: %w", username, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("remove user %q: %w", username, driven.ErrUserNotFound)
	}

	return nil
}

// List returns all users ordered by username.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, username, created_at FROM users ORDER BY username`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Username, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		u.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for user %q: %w", u.Username, err)
		}

		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
