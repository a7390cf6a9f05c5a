package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codePattern = regexp.MustCompile("`([^`]+)`")
	boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// inlineRenderer applies inline transforms to a piece of text. Rendered
// fragments that later transforms must not touch are swapped out for
// placeholders until the last step.
type inlineRenderer struct {
	protected []string
}

// renderInline converts links, code spans, bold and italic markup in that order
func renderInline(text string) string {
	r := &inlineRenderer{}

	text = linkPattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := linkPattern.FindStringSubmatch(m)
		return `<a href="` + r.protect(sub[2]) + `">` + sub[1] + `</a>`
	})
	text = codePattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := codePattern.FindStringSubmatch(m)
		return r.protect("<code>" + sub[1] + "</code>")
	})
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = replaceItalic(text)

	return r.restore(text)
}

func (r *inlineRenderer) protect(s string) string {
	r.protected = append(r.protected, s)
	return placeholder(len(r.protected) - 1)
}

// restore substitutes placeholders back, newest first, since a later
// fragment may contain an earlier placeholder
func (r *inlineRenderer) restore(text string) string {
	for i := len(r.protected) - 1; i >= 0; i-- {
		text = strings.Replace(text, placeholder(i), r.protected[i], 1)
	}
	return text
}

func placeholder(i int) string {
	return fmt.Sprintf("\uE000%d\uE001", i)
}

// replaceItalic wraps *text* in <em>, skipping any asterisk that touches
// another asterisk so leftover bold markers are never split
func replaceItalic(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '*' && (i == 0 || s[i-1] != '*') && i+1 < len(s) && s[i+1] != '*' {
			if j := strings.IndexByte(s[i+1:], '*'); j > 0 {
				end := i + 1 + j
				if end+1 >= len(s) || s[end+1] != '*' {
					sb.WriteString("<em>" + s[i+1:end] + "</em>")
					i = end + 1
					continue
				}
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
