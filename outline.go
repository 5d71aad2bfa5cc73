package pagemd

import (
	"regexp"
	"strings"
)

// Heading represents one heading in a rendered Markdown document.
type Heading struct {
	Level int
	Title string
}

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// Outline parses markdown and returns all headings (H1-H6) in document
// order. Fenced code blocks are ignored so # inside code is not mistaken
// for a heading.
func Outline(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	cleaned := codeBlockRe.ReplaceAllString(markdown, "")

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	for _, match := range matches {
		headings = append(headings, Heading{
			Level: len(match[1]),
			Title: strings.TrimSpace(match[2]),
		})
	}
	return headings
}
