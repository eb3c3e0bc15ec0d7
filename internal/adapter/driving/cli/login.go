// Package cli is the interactive driving adapter: it prompts for a username and
// password and reports the verification outcome on the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ericfisherdev/credcheck/internal/application"
	"github.com/ericfisherdev/credcheck/internal/domain/model"
)

// Messages printed for each verification result.
const (
	MsgAuthenticated = "Login Successful!"
	MsgRejected      = "Invalid username or password."
	MsgStoreError    = "Unable to verify credentials, try again later."
)

// PasswordReader reads a password, typically without echoing it.
type PasswordReader func() (string, error)

// TerminalPasswordReader returns a PasswordReader that reads from the terminal
// f with echo disabled, or nil when f is not a terminal.
func TerminalPasswordReader(f *os.File, out io.Writer) PasswordReader {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return func() (string, error) {
		b, err := term.ReadPassword(fd)
		// The user's Enter was swallowed along with the echo.
		_, _ = fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// LoginPrompt asks for credentials and verifies them once per Run.
type LoginPrompt struct {
	verifier      *application.CredentialVerifier
	in            *bufio.Reader
	out           io.Writer
	readPassword  PasswordReader
	lookupTimeout time.Duration
}

// NewLoginPrompt creates a LoginPrompt. When readPassword is nil the password
// is read as a plain line from in.
func NewLoginPrompt(
	verifier *application.CredentialVerifier,
	in io.Reader,
	out io.Writer,
	readPassword PasswordReader,
	lookupTimeout time.Duration,
) *LoginPrompt {
	return &LoginPrompt{
		verifier:      verifier,
		in:            bufio.NewReader(in),
		out:           out,
		readPassword:  readPassword,
		lookupTimeout: lookupTimeout,
	}
}

// Run prompts for a username and password, verifies them and prints the
// outcome. The returned error covers prompt I/O only; a store failure is a
// result, not an error.
func (p *LoginPrompt) Run(ctx context.Context) (model.VerificationResult, error) {
	_, _ = fmt.Fprint(p.out, "Enter Username: ")
	username, err := ReadLine(p.in)
	if err != nil {
		return "", fmt.Errorf("read username: %w", err)
	}

	_, _ = fmt.Fprint(p.out, "Enter Password: ")
	var password string
	if p.readPassword != nil {
		password, err = p.readPassword()
	} else {
		password, err = ReadLine(p.in)
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	if p.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.lookupTimeout)
		defer cancel()
	}

	result := p.verifier.Verify(ctx, username, password)
	_, _ = fmt.Fprintln(p.out, Message(result))
	return result, nil
}

// ReadLine returns the next line from r without its line terminator. A final
// line without a newline is accepted; an empty read at EOF is an error.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Message returns the user-facing line for result.
func Message(result model.VerificationResult) string {
	switch result {
	case model.ResultAuthenticated:
		return MsgAuthenticated
	case model.ResultRejected:
		return MsgRejected
	default:
		return MsgStoreError
	}
}

// ExitCode maps result to a process exit status: 0 authenticated, 1 rejected,
// 2 store error.
func ExitCode(result model.VerificationResult) int {
	switch result {
	case model.ResultAuthenticated:
		return 0
	case model.ResultRejected:
		return 1
	default:
		return 2
	}
}
