package model

// VerificationResult is the outcome of verifying a single credential pair.
type VerificationResult string

const (
	ResultAuthenticated VerificationResult = "authenticated"
	ResultRejected      VerificationResult = "rejected"    // Store reachable, no match.
	ResultStoreError    VerificationResult = "store_error" // Store could not be reached or queried.
)

// Backend names a CredentialStore implementation.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendStatic   Backend = "static"
)
