package pagemd

import (
	"regexp"
	"strings"
)

// Formatting fixups applied to converter output. Rules that insert blank
// lines require a non-newline character before the break, so text that is
// already spaced correctly is left alone and the fixups are idempotent.
var (
	reBlankRuns     = regexp.MustCompile(`\n{3,}`)
	reHeadingBefore = regexp.MustCompile(`([^\n])\n(#{1,6}\s)`)
	reHeadingAfter  = regexp.MustCompile(`(#{1,6}.*)\n([^\n#])`)
	reListBefore    = regexp.MustCompile(`([^\n])\n([*+-]|\d+\.)\s`)
	reQuoteBefore   = regexp.MustCompile(`([^\n])\n(>)`)
	reHorizSpace    = regexp.MustCompile(`[ \t]+`)
)

// FormatMarkdown cleans up converter output: blank-line runs collapse to a
// single blank line, headings, list items and blockquotes are separated
// from surrounding text by blank lines, runs of spaces and tabs collapse
// to one space, and the whole document is trimmed.
func FormatMarkdown(markdown string) string {
	markdown = reBlankRuns.ReplaceAllString(markdown, "\n\n")
	markdown = reHeadingBefore.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = reHeadingAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = reListBefore.ReplaceAllString(markdown, "$1\n\n$2 ")
	markdown = reQuoteBefore.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = reHorizSpace.ReplaceAllString(markdown, " ")
	return strings.TrimSpace(markdown)
}
