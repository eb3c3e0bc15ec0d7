package model

import "time"

// User is an administrative view of a row in the users table. The stored
// password is deliberately not carried.
type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time
}
