package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
)

// Sentinel errors returned by UserStore implementations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates a user with the same username already exists.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserStore defines the driven port for administering the users table that a
// CredentialStore reads from.
// Add returns ErrUserAlreadyExists if the username is taken.
// Remove returns ErrUserNotFound if the username does not exist.
// List returns users ordered by username.
type UserStore interface {
	Add(ctx context.Context, cred model.Credential) error
	Remove(ctx context.Context, username string) error
	List(ctx context.Context) ([]model.User, error)
}
