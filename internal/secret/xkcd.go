package secret

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	kerrors "github.com/durableprogramming/dotenvk/internal/errors"
)

// DefaultXKCDCommand is the passphrase generator invoked for --xkcd.
const DefaultXKCDCommand = "xkcdpass"

// XKCD runs the external word-list passphrase generator and returns its
// output with surrounding whitespace trimmed. The "-d-" flag joins words
// with dashes. When the command is not installed the error wraps
// ErrXKCDPassUnavailable so callers can leave the target value unset.
func XKCD(ctx context.Context, command string) (string, error) {
	if command == "" {
		command = DefaultXKCDCommand
	}

	out, err := exec.CommandContext(ctx, command, "-d-").Output()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: install it or pass a different command via .dotenvk.toml", kerrors.ErrXKCDPassUnavailable)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s failed: %s", command, bytes.TrimSpace(exitErr.Stderr))
		}
		return "", fmt.Errorf("failed to run %s: %w", command, err)
	}

	passphrase := strings.TrimSpace(string(out))
	if passphrase == "" {
		return "", fmt.Errorf("%s produced no output", command)
	}
	return passphrase, nil
}
