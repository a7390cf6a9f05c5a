package parser

import (
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/takak2166/markdown2wordpress/internal/logger"
)

// DefaultTitle is used when a document has neither an H1 line nor a front matter title
const DefaultTitle = "Untitled Post"

const tagsMarker = "**Tags:**"

// Document is a markdown file split into the parts the publisher needs
type Document struct {
	Title    string
	Body     string   // markdown without title, front matter or tags annotation
	Tags     []string // from front matter and the trailing tags annotation
	Category string   // from front matter
}

type frontMatter struct {
	Title    string   `yaml:"title"`
	Tags     []string `yaml:"tags"`
	Category string   `yaml:"category"`
}

// ParseDocument extracts the title, tags and body from raw markdown content.
// A leading "---" block that is not a YAML mapping is kept as markdown.
func ParseDocument(content string) *Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var meta frontMatter
	if hasFrontMatter(content) {
		content, meta = splitFrontMatter(content)
	}

	title, body := extractTitle(content)
	if title == "" {
		title = strings.TrimSpace(meta.Title)
	}
	if title == "" {
		title = DefaultTitle
	}

	body, annotated := stripTagsAnnotation(strings.TrimSpace(body))

	return &Document{
		Title:    title,
		Body:     body,
		Tags:     mergeTags(meta.Tags, annotated),
		Category: strings.TrimSpace(meta.Category),
	}
}

// splitFrontMatter parses the metadata block at the top of content and
// returns the remaining body. When the block does not parse, content is
// returned unchanged with empty metadata.
func splitFrontMatter(content string) (string, frontMatter) {
	var meta frontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		logger.Warn("Treating leading --- block as markdown", err)
		return content, frontMatter{}
	}
	return string(body), meta
}

// hasFrontMatter reports whether content opens with a closed "---" block,
// so a leading horizontal rule is not mistaken for metadata
func hasFrontMatter(content string) bool {
	if !strings.HasPrefix(content, "---\n") {
		return false
	}
	rest := content[len("---\n"):]
	return strings.HasPrefix(rest, "---\n") || strings.Contains(rest, "\n---\n") || strings.HasSuffix(rest, "\n---")
}

// extractTitle returns the text of the first "# " line and the content with
// that line removed. The title is empty when there is no such line.
func extractTitle(content string) (string, string) {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		trimmed := strings.TrimSpace(l)
		if !strings.HasPrefix(trimmed, "# ") {
			continue
		}
		rest := append(lines[:i:i], lines[i+1:]...)
		return strings.TrimSpace(trimmed[2:]), strings.Join(rest, "\n")
	}
	return "", content
}

// stripTagsAnnotation removes a final "**Tags:** a, b" line, and a "---"
// rule directly above it, returning the remaining body and the tag names
func stripTagsAnnotation(body string) (string, []string) {
	lines := strings.Split(body, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(last, tagsMarker) {
		return body, nil
	}

	tags := SplitTags(strings.TrimPrefix(last, tagsMarker))

	lines = trimTrailingBlank(lines[:len(lines)-1])
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "---" {
		lines = lines[:n-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), tags
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// SplitTags splits a comma-separated list into trimmed, non-empty names
func SplitTags(list string) []string {
	var tags []string
	for _, t := range strings.Split(list, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// mergeTags concatenates tag lists, dropping case-insensitive duplicates
func mergeTags(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, t := range list {
			t = strings.TrimSpace(t)
			key := strings.ToLower(t)
			if t == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, t)
		}
	}
	return out
}
