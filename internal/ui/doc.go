// Package ui provides semantic terminal formatting for dotenvk output.
//
// Formatters carry both a color and a plain-text fallback so output
// stays meaningful when colors are disabled (NO_COLOR, dumb terminals,
// redirected output). Diff renders line-level change previews for
// --dry-run.
package ui
