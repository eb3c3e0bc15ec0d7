package httphandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/credcheck/internal/application"
	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/metrics"
)

// maxRequestBody caps the size of a verify request body.
const maxRequestBody = 64 << 10

// Handler is the HTTP driving adapter that serves the verification API.
type Handler struct {
	verifier      *application.CredentialVerifier
	lookupTimeout time.Duration
	logger        *slog.Logger
}

// NewHandler creates a Handler. A zero lookupTimeout leaves each verification
// bounded only by the request context.
func NewHandler(verifier *application.CredentialVerifier, lookupTimeout time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		verifier:      verifier,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with request-id, logging, metrics and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/verify", h.Verify)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = metricsMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// Verify checks a username/password pair. Authenticated answers 200, rejected
// 401 and an unreachable store 503; the body always carries the result.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if h.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.lookupTimeout)
		defer cancel()
	}

	result := h.verifier.Verify(ctx, req.Username, req.Password)
	metrics.RecordVerification(result)

	if result == model.ResultStoreError {
		h.logger.Warn("verification unavailable",
			"username", req.Username,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}

	writeJSON(w, statusForResult(result), VerifyResponse{Result: string(result)})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func statusForResult(result model.VerificationResult) int {
	switch result {
	case model.ResultAuthenticated:
		return http.StatusOK
	case model.ResultRejected:
		return http.StatusUnauthorized
	default:
		return http.StatusServiceUnavailable
	}
}
