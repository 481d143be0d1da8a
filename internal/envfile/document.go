package envfile

import (
	"fmt"
	"strings"

	kerrors "github.com/durableprogramming/dotenvk/internal/errors"
)

// Pair is one key/value assignment, in document order.
type Pair struct {
	Key   string
	Value string
}

// Document is an ordered sequence of lines plus a lookup index mapping
// each key to its first entry line.
type Document struct {
	lines []Line
	index map[string]int
}

// New returns an empty document.
func New() *Document {
	return &Document{index: make(map[string]int)}
}

// Get returns the value for key and whether the key is present. With
// duplicate keys the first entry wins.
func (d *Document) Get(key string) (string, bool) {
	i, ok := d.index[key]
	if !ok {
		return "", false
	}
	return d.lines[i].Value, true
}

// Set assigns value to key. An existing entry is updated in place,
// keeping its position and inline comment; otherwise a new entry is
// appended at the end of the document. The entry is re-rendered on
// output with double quotes only when the value needs them.
func (d *Document) Set(key, value string) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidKey, key)
	}
	if i, ok := d.index[key]; ok {
		ln := &d.lines[i]
		ln.Value = value
		ln.RawValue = Quote(value)
		ln.dirty = true
		return nil
	}
	d.lines = append(d.lines, Line{
		Kind:     LineEntry,
		Key:      key,
		Value:    value,
		RawValue: Quote(value),
		dirty:    true,
	})
	d.index[key] = len(d.lines) - 1
	return nil
}

// Unset removes every entry line for key, leaving surrounding comments
// and blank lines untouched. It reports whether anything was removed.
func (d *Document) Unset(key string) bool {
	kept := d.lines[:0]
	removed := false
	for _, ln := range d.lines {
		if ln.Kind == LineEntry && ln.Key == key {
			removed = true
			continue
		}
		kept = append(kept, ln)
	}
	d.lines = kept
	if removed {
		d.reindex()
	}
	return removed
}

// Keys returns all keys in document order, duplicates collapsed to their
// first occurrence.
func (d *Document) Keys() []string {
	pairs := d.Pairs()
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns the effective key/value mapping in document order.
func (d *Document) Pairs() []Pair {
	seen := make(map[string]bool, len(d.index))
	var pairs []Pair
	for _, ln := range d.lines {
		if ln.Kind != LineEntry || seen[ln.Key] {
			continue
		}
		seen[ln.Key] = true
		pairs = append(pairs, Pair{Key: ln.Key, Value: ln.Value})
	}
	return pairs
}

// Len returns the number of physical lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the line records.
func (d *Document) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)
	return out
}

// String serializes the document. Untouched lines come back verbatim;
// entries assigned during this invocation are rendered fresh. Non-empty
// output ends with exactly one newline.
func (d *Document) String() string {
	if len(d.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, ln := range d.lines {
		b.WriteString(ln.render())
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *Document) reindex() {
	d.index = make(map[string]int, len(d.lines))
	for i, ln := range d.lines {
		if ln.Kind != LineEntry {
			continue
		}
		if _, ok := d.index[ln.Key]; !ok {
			d.index[ln.Key] = i
		}
	}
}

// ValidKey reports whether s matches the identifier grammar
// [A-Za-z_][A-Za-z0-9_]*.
func ValidKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isKeyByte(s[i], i == 0) {
			return false
		}
	}
	return true
}

// Quote renders value for output. Values containing whitespace, '#', a
// quote character, or a backslash are wrapped in double quotes with '"'
// and '\' escaped; everything else is written bare.
func Quote(value string) string {
	if !strings.ContainsAny(value, " \t#\"'\\") {
		return value
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// SplitPair splits a KEY=VALUE command-line argument. The key is trimmed
// of surrounding whitespace; the value is taken verbatim.
func SplitPair(arg string) (key, value string, err error) {
	i := strings.IndexByte(arg, '=')
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q", kerrors.ErrInvalidPair, arg)
	}
	return strings.TrimSpace(arg[:i]), arg[i+1:], nil
}
