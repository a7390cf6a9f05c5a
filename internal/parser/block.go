package parser

import (
	"fmt"
	"html"
	"strings"
)

// Block types understood by the WordPress block editor
const (
	BlockHeading   = "heading"
	BlockCode      = "code"
	BlockList      = "list"
	BlockParagraph = "paragraph"
)

// Block is a single Gutenberg block: an HTML fragment wrapped in
// <!-- wp:TYPE --> ... <!-- /wp:TYPE --> comment delimiters
type Block struct {
	Type  string
	Attrs string // JSON attributes placed in the opening delimiter, if any
	HTML  string
}

// String renders the block with its comment delimiters
func (b Block) String() string {
	open := "<!-- wp:" + b.Type + " -->"
	if b.Attrs != "" {
		open = "<!-- wp:" + b.Type + " " + b.Attrs + " -->"
	}
	return open + "\n" + b.HTML + "\n<!-- /wp:" + b.Type + " -->"
}

func headingBlock(level int, text string) Block {
	b := Block{
		Type: BlockHeading,
		HTML: fmt.Sprintf(`<h%d class="wp-block-heading">%s</h%d>`, level, text, level),
	}
	// level 2 is the editor default and carries no attributes
	if level != 2 {
		b.Attrs = fmt.Sprintf(`{"level":%d}`, level)
	}
	return b
}

func codeBlock(content string) Block {
	return Block{
		Type: BlockCode,
		HTML: `<pre class="wp-block-code"><code>` + html.EscapeString(content) + `</code></pre>`,
	}
}

func listBlock(ordered bool, items []string) Block {
	var sb strings.Builder
	tag := "ul"
	if ordered {
		tag = "ol"
	}
	sb.WriteString("<" + tag + ` class="wp-block-list">` + "\n")
	for _, item := range items {
		sb.WriteString("<li>" + item + "</li>\n")
	}
	sb.WriteString("</" + tag + ">")

	b := Block{Type: BlockList, HTML: sb.String()}
	if ordered {
		b.Attrs = `{"ordered":true}`
	}
	return b
}

func paragraphBlock(text string) Block {
	return Block{Type: BlockParagraph, HTML: "<p>" + text + "</p>"}
}
