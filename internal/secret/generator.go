package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"

	kerrors "github.com/durableprogramming/dotenvk/internal/errors"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// DefaultLength is the value length used when the caller does not
// specify one.
const DefaultLength = 32

// Generate returns a random string of exactly length characters.
// Letters are always in the pool; digits and symbols are added when the
// corresponding flag is set. Each character is chosen with rand.Int so
// selection is uniform over the pool with no modulo bias.
func Generate(length int, numeric, symbol bool) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: got %d", kerrors.ErrInvalidLength, length)
	}

	pool := letters
	if numeric {
		pool += digits
	}
	if symbol {
		pool += symbols
	}

	out := make([]byte, length)
	poolSize := big.NewInt(int64(len(pool)))
	for i := range out {
		n, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = pool[n.Int64()]
	}
	return string(out), nil
}
