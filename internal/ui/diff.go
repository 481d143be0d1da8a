package ui

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-level diff between two file states, for --dry-run
// previews. Removed lines get a red "-" prefix, added lines a green "+",
// unchanged lines two spaces.
func Diff(before, after string) string {
	dmp := diffmatchpatch.New()

	// Line-mode diff keeps whole lines together.
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out.WriteString(Error.Sprint("- " + line))
			case diffmatchpatch.DiffInsert:
				out.WriteString(Success.Sprint("+ " + line))
			default:
				out.WriteString("  " + line)
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
