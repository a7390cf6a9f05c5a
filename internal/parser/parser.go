package parser

import (
	"strings"

	"github.com/takak2166/markdown2wordpress/internal/logger"
)

// Parser handles the conversion from markdown to WordPress block markup
type Parser struct{}

// New creates a new Parser instance
func New() *Parser {
	return &Parser{}
}

// Convert converts markdown (without its title line) to WordPress block
// markup, joining blocks with a blank line
func (p *Parser) Convert(markdown string) string {
	blocks := p.Blocks(markdown)

	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.String()
	}
	return strings.Join(out, "\n\n")
}

// Blocks scans markdown line by line and returns the blocks in source order
func (p *Parser) Blocks(markdown string) []Block {
	lines := strings.Split(markdown, "\n")
	var blocks []Block

	for i := 0; i < len(lines); {
		cur := classify(lines[i])

		switch cur.kind {
		case lineBlank:
			i++

		case lineHeading:
			// heading text is emitted as written, without inline transforms
			blocks = append(blocks, headingBlock(cur.level, cur.text))
			i++

		case lineCodeFence:
			var code []string
			i++
			for i < len(lines) && !strings.HasPrefix(lines[i], codeFence) {
				code = append(code, lines[i])
				i++
			}
			blocks = append(blocks, codeBlock(strings.Join(code, "\n")))
			// skip the closing fence; past the end when it is missing
			i++

		case lineListItem, lineOrderedItem:
			var items []string
			for i < len(lines) {
				next := classify(lines[i])
				if next.kind != cur.kind {
					break
				}
				items = append(items, renderInline(next.text))
				i++
			}
			blocks = append(blocks, listBlock(cur.kind == lineOrderedItem, items))

		default:
			var para []string
			for i < len(lines) {
				next := classify(lines[i])
				if next.kind != lineParagraph {
					break
				}
				para = append(para, next.text)
				i++
			}
			blocks = append(blocks, paragraphBlock(renderInline(strings.Join(para, " "))))
		}
	}

	logger.Debug("Converted markdown to blocks", map[string]interface{}{
		"lines":  len(lines),
		"blocks": len(blocks),
	})

	return blocks
}
