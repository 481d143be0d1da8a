package envfile

// LineKind identifies what a physical line of an env file holds.
type LineKind int

const (
	// LineBlank is a line containing only whitespace.
	LineBlank LineKind = iota

	// LineComment is a line whose first non-whitespace character is '#'.
	LineComment

	// LineEntry is a KEY=VALUE assignment.
	LineEntry

	// LineUnparsed is a line that matches no grammar rule. It is kept
	// verbatim so serialization never drops user data.
	LineUnparsed
)

// Line is a single physical line of the source file.
//
// Raw holds the original text without its terminator. For blank, comment,
// and unparsed lines it is the only payload. For entries it allows the
// serializer to reproduce the exact original bytes when the entry has not
// been assigned during this invocation.
type Line struct {
	Kind LineKind
	Raw  string

	// Entry fields. Value is the unquoted, unescaped value. RawValue is
	// the value's textual form as written (quoting intact); for entries
	// assigned at runtime it holds the freshly quoted rendering.
	// InlineComment is the trailing comment including its '#'.
	Key           string
	Value         string
	RawValue      string
	InlineComment string

	// dirty marks an entry assigned during this invocation, forcing the
	// serializer to re-render it from Key/RawValue instead of Raw.
	dirty bool
}

// render returns the serialized form of the line, without a terminator.
func (l Line) render() string {
	if l.Kind != LineEntry {
		return l.Raw
	}
	if !l.dirty && l.Raw != "" {
		return l.Raw
	}
	out := l.Key + "=" + l.RawValue
	if l.InlineComment != "" {
		out += " " + l.InlineComment
	}
	return out
}
