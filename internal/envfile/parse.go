package envfile

import "strings"

// Parse turns file text into a Document. Parsing is total: a line that
// cannot be classified becomes a LineUnparsed record rather than an error.
func Parse(text string) *Document {
	d := New()
	if text == "" {
		return d
	}

	rows := strings.Split(text, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for _, raw := range rows {
		raw = strings.TrimSuffix(raw, "\r")
		d.lines = append(d.lines, parseLine(raw))
	}
	d.reindex()
	return d
}

func parseLine(raw string) Line {
	stripped := strings.TrimLeft(raw, " \t")
	if stripped == "" {
		return Line{Kind: LineBlank, Raw: raw}
	}
	if stripped[0] == '#' {
		return Line{Kind: LineComment, Raw: raw}
	}

	key, rest, ok := splitKey(raw)
	if !ok {
		return Line{Kind: LineUnparsed, Raw: raw}
	}

	value, rawValue, inline, ok := parseValue(rest)
	if !ok {
		return Line{Kind: LineUnparsed, Raw: raw}
	}
	return Line{
		Kind:          LineEntry,
		Raw:           raw,
		Key:           key,
		Value:         value,
		RawValue:      rawValue,
		InlineComment: inline,
	}
}

// splitKey consumes an identifier followed immediately by '=' at the start
// of the line. Whitespace around the key or the '=' disqualifies the line.
func splitKey(s string) (key, rest string, ok bool) {
	i := 0
	for i < len(s) && isKeyByte(s[i], i == 0) {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != '=' {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

func isKeyByte(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

// parseValue interprets the text after the '='. It returns the decoded
// value, the value's original textual form, and any trailing inline
// comment (verbatim, '#' included).
func parseValue(s string) (value, rawValue, inline string, ok bool) {
	if s == "" {
		return "", "", "", true
	}

	if s[0] == '"' || s[0] == '\'' {
		var rest string
		value, rawValue, rest, ok = scanQuoted(s)
		if !ok {
			return "", "", "", false
		}
		trailer := strings.TrimLeft(rest, " \t")
		switch {
		case trailer == "":
			return value, rawValue, "", true
		case trailer[0] == '#':
			return value, rawValue, trailer, true
		}
		// Stray text after the closing quote.
		return "", "", "", false
	}

	// Unquoted: the value runs to end of line or to a '#' preceded by
	// whitespace. A '#' glued to the value (or escaped with a backslash)
	// stays part of the value.
	for i := 1; i < len(s); i++ {
		if s[i] == '#' && (s[i-1] == ' ' || s[i-1] == '\t') {
			value = strings.TrimRight(s[:i], " \t")
			return value, value, s[i:], true
		}
	}
	value = strings.TrimRight(s, " \t")
	return value, value, "", true
}

// scanQuoted consumes a quoted value at the start of s. Inside double
// quotes \" and \\ are unescaped; single quotes take everything literally.
// An unterminated quote fails the scan.
func scanQuoted(s string) (value, rawValue, rest string, ok bool) {
	quote := s[0]
	if quote == '\'' {
		end := strings.IndexByte(s[1:], '\'')
		if end < 0 {
			return "", "", "", false
		}
		end++ // offset into s
		return s[1:end], s[:end+1], s[end+1:], true
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '"' {
			return b.String(), s[:i+1], s[i+1:], true
		}
		b.WriteByte(c)
	}
	return "", "", "", false
}
