// Package envfile implements a structure-preserving model of .env files.
//
// A file is parsed into an ordered sequence of typed lines: blank lines,
// comments, KEY=VALUE entries, and unparsed lines (anything that does not
// match the grammar, kept verbatim so malformed input is never lost).
// Mutations touch only the entry lines they target; everything else is
// reproduced byte-for-byte on output.
//
// # Round trip
//
// For any newline-terminated input that is not mutated,
// Parse(text).String() == text. Two normalizations are applied on output
// and are deliberate: lines are joined with "\n" (CRLF input parses fine
// but is rewritten with LF), and non-empty output always ends with exactly
// one trailing newline.
//
// # Duplicate keys
//
// When a file contains the same key twice, the first entry wins for
// lookups and enumeration. Both physical lines stay in the file until
// Unset, which removes every line for the key.
package envfile
