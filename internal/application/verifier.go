package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
)

// CredentialVerifier resolves a credential pair to a VerificationResult by
// asking its injected CredentialStore. It holds no per-call state, performs no
// retries and caches nothing, so one verifier may serve concurrent callers.
type CredentialVerifier struct {
	store  driven.CredentialStore
	logger *slog.Logger
}

// NewCredentialVerifier creates a CredentialVerifier backed by store. A nil
// logger falls back to slog.Default().
func NewCredentialVerifier(store driven.CredentialStore, logger *slog.Logger) *CredentialVerifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialVerifier{
		store:  store,
		logger: logger,
	}
}

// Verify looks up username and password exactly as given and maps the answer
// to a result. A store failure is logged and reported as ResultStoreError; it
// is never collapsed into ResultRejected.
func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) model.VerificationResult {
	found, err := v.store.Lookup(ctx, username, password)
	if err != nil {
		v.logger.ErrorContext(ctx, "credential lookup failed", "username", username, "error", err)
		return model.ResultStoreError
	}

	if !found {
		return model.ResultRejected
	}
	return model.ResultAuthenticated
}

// VerifyCredential is a convenience wrapper around Verify for callers that
// already hold a model.Credential.
func (v *CredentialVerifier) VerifyCredential(ctx context.Context, cred model.Credential) model.VerificationResult {
	return v.Verify(ctx, cred.Username, cred.Password)
}
