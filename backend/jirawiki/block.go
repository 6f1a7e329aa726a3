package jirawiki

import (
	"strconv"
	"strings"

	"github.com/npillmayer/markout/doctree"
)

// Block handlers. As with inlines, handlers receive pre-rendered content
// and return markup fragments; sibling blocks are joined by the driver.

// Plain renders inline content without paragraph decoration.
func (r *Renderer) Plain(content string) string {
	return content
}

// Paragraph wraps content in blank lines.
func (r *Renderer) Paragraph(content string) string {
	return "\n" + content + "\n"
}

// Header renders a section heading of the given level, level 1 being the
// topmost.
func (r *Renderer) Header(level int, content string) string {
	return "h" + strconv.Itoa(level) + ". " + content
}

// Anchor renders an anchor macro. An empty name yields no output.
func (r *Renderer) Anchor(name string) string {
	if name == "" {
		return ""
	}
	return "{anchor:" + name + "}"
}

// BlockQuote renders a quote block. Surrounding whitespace of the quoted
// content is trimmed.
func (r *Renderer) BlockQuote(content string) string {
	return "bq. " + strings.TrimSpace(content)
}

// HorizontalRule renders a thematic break.
func (r *Renderer) HorizontalRule() string {
	return "----"
}

// LineBlock joins pre-rendered lines, keeping their breaks hard.
func (r *Renderer) LineBlock(lines []string) string {
	return strings.Join(lines, "\n")
}

// CodeBlock wraps verbatim code in code macro lines. Attributes are
// accepted, but not emitted.
func (r *Renderer) CodeBlock(code string, attrs *doctree.Attributes) string {
	return "{code}\n" + code + "\n{code}"
}

// BulletList prefixes every item with a star.
func (r *Renderer) BulletList(items []string) string {
	return prefixedList("* ", items)
}

// OrderedList prefixes every item with a hash sign.
func (r *Renderer) OrderedList(items []string) string {
	return prefixedList("# ", items)
}

// DefinitionList renders term/definition items like a bullet list. The
// term/definition structure is flattened; callers pass terms and
// definitions as consecutive items.
func (r *Renderer) DefinitionList(items []string) string {
	return r.BulletList(items)
}

func prefixedList(prefix string, items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix)
		sb.WriteString(item)
	}
	return sb.String()
}

// CaptionedImage renders a standalone image, with the caption as display
// text.
func (r *Renderer) CaptionedImage(src, title, caption string, attrs *doctree.Attributes) string {
	return r.Image(caption, src, title, attrs)
}

// Table renders a header line and one line per body row. The header line
// is only emitted if at least one header cell has non-blank content.
// Caption and column specs are accepted, but the dialect cannot express
// them.
func (r *Renderer) Table(caption string, colspecs []doctree.ColSpec, headers []string, rows [][]string) string {
	lines := make([]string, 0, len(rows)+1)
	blank := true
	for _, h := range headers {
		if strings.TrimSpace(h) != "" {
			blank = false
			break
		}
	}
	if !blank {
		lines = append(lines, "||"+strings.Join(headers, "||")+"||")
	}
	for _, row := range rows {
		lines = append(lines, "|"+strings.Join(row, "|")+"|")
	}
	return strings.Join(lines, "\n")
}

// RawBlock wraps verbatim content in noformat macro lines, whatever
// format it declares.
func (r *Renderer) RawBlock(format, text string) string {
	return "{noformat}\n" + text + "\n{noformat}"
}

// Div renders grouped content like a paragraph. Attributes are accepted,
// but not emitted.
func (r *Renderer) Div(content string, attrs *doctree.Attributes) string {
	return r.Paragraph(content)
}
