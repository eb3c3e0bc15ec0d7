package model

// Credential is a username/password pair presented for verification. Both
// fields are opaque text: no trimming, case folding or hashing is applied, and
// either may be empty.
type Credential struct {
	Username string
	Password string
}
