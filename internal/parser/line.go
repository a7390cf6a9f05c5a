package parser

import "strings"

// lineKind is the classification of a single markdown source line
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineCodeFence
	lineListItem
	lineOrderedItem
	lineParagraph
)

const codeFence = "```"

// line is a classified source line. Only the fields relevant to kind are set.
type line struct {
	kind  lineKind
	level int    // heading level
	lang  string // code fence info string
	text  string // heading, list item or paragraph text
}

// classify inspects the prefix of raw and returns its classification
func classify(raw string) line {
	if strings.TrimSpace(raw) == "" {
		return line{kind: lineBlank}
	}

	switch {
	case strings.HasPrefix(raw, "## "):
		return line{kind: lineHeading, level: 2, text: strings.TrimSpace(raw[3:])}
	case strings.HasPrefix(raw, "### "):
		return line{kind: lineHeading, level: 3, text: strings.TrimSpace(raw[4:])}
	case strings.HasPrefix(raw, codeFence):
		return line{kind: lineCodeFence, lang: strings.TrimSpace(raw[len(codeFence):])}
	case strings.HasPrefix(raw, "- "), strings.HasPrefix(raw, "* "):
		return line{kind: lineListItem, text: strings.TrimSpace(raw[2:])}
	}

	if n := orderedPrefixLen(raw); n > 0 {
		return line{kind: lineOrderedItem, text: strings.TrimSpace(raw[n:])}
	}

	return line{kind: lineParagraph, text: strings.TrimSpace(raw)}
}

// orderedPrefixLen returns the length of a leading "<digits>.<space>" marker,
// or 0 when raw does not start with one
func orderedPrefixLen(raw string) int {
	i := 0
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(raw) || raw[i] != '.' {
		return 0
	}
	if !isSpace(raw[i+1]) {
		return 0
	}
	return i + 2
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
