package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/durableprogramming/dotenvk/internal/envfile"
	kerrors "github.com/durableprogramming/dotenvk/internal/errors"
)

// Supported format names.
const (
	FormatBash = "bash"
	FormatJSON = "json"
)

// Render dispatches to the renderer for format. Format names are
// matched case-insensitively.
func Render(format string, pairs []envfile.Pair) (string, error) {
	switch strings.ToLower(format) {
	case FormatBash:
		return Bash(pairs), nil
	case FormatJSON:
		return JSON(pairs)
	}
	return "", fmt.Errorf("%w: %q (use %s or %s)", kerrors.ErrUnsupportedFormat, format, FormatBash, FormatJSON)
}

// Bash renders one shell export statement per pair.
func Bash(pairs []envfile.Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("export ")
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(ShellEscape(p.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// ShellEscape wraps value in double quotes when it contains a character
// the shell would interpret. Inside the quotes every character bash still
// expands there gets a backslash: `"`, `\`, `$`, and backticks. Sourcing
// the output must reproduce the value literally, never run it.
// Plain values pass through bare.
func ShellEscape(value string) string {
	if !strings.ContainsAny(value, " \"'$`\\") {
		return value
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '"' || c == '\\' || c == '$' || c == '`' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// JSON renders the pairs as a pretty-printed JSON object with two-space
// indentation. The object is assembled by hand because keys must keep
// document order and encoding/json sorts map keys.
func JSON(pairs []envfile.Pair) (string, error) {
	if len(pairs) == 0 {
		return "{}", nil
	}

	var b strings.Builder
	b.WriteString("{\n")
	for i, p := range pairs {
		key, err := json.Marshal(p.Key)
		if err != nil {
			return "", fmt.Errorf("failed to encode key %q: %w", p.Key, err)
		}
		value, err := json.Marshal(p.Value)
		if err != nil {
			return "", fmt.Errorf("failed to encode value for %q: %w", p.Key, err)
		}
		b.WriteString("  ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)
		if i < len(pairs)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String(), nil
}
