// Command credcheck verifies username/password pairs against a credential
// store, either interactively or over HTTP, and administers the store.
package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container (TLS to postgres)
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	slog.Error("fatal error", "error", err)
	os.Exit(1)
}

// exitError ends the process with a specific status without logging, for
// outcomes that were already reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "exit status " + strconv.Itoa(e.code)
}
