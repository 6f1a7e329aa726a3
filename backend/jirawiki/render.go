package jirawiki

import (
	"strings"

	"github.com/npillmayer/markout/core/filter"
	"github.com/npillmayer/markout/doctree"
	"github.com/shurcooL/sanitized_anchor_name"
)

// blocksep separates sibling blocks in the output document.
const blocksep = "\n\n"

// Render renders a complete document. It owns a fresh footnote registry
// for the duration of the call and finishes by assembling body and
// footnotes, so repeated calls on the same Renderer yield identical
// output for identical trees.
func (r *Renderer) Render(doc *doctree.Document) string {
	if doc == nil {
		return ""
	}
	notes := &Footnotes{}
	body := r.RenderBlocks(doc.Blocks, notes)
	return r.AssembleDocument(body, notes.Flush(), doc.Meta)
}

// RenderBlocks renders a sequence of sibling blocks, joined by blank
// lines. Note bodies encountered underways are recorded in notes.
func (r *Renderer) RenderBlocks(blocks []doctree.Block, notes *Footnotes) string {
	rendered := make([]string, len(blocks))
	for i, block := range blocks {
		rendered[i] = r.renderBlock(block, notes)
	}
	return strings.Join(rendered, blocksep)
}

// RenderInlines renders a sequence of inline nodes into one string.
// Note bodies encountered underways are recorded in notes.
func (r *Renderer) RenderInlines(inlines []doctree.Inline, notes *Footnotes) string {
	var sb strings.Builder
	for _, inline := range inlines {
		sb.WriteString(r.renderInline(inline, notes))
	}
	return sb.String()
}

// renderBlock dispatches over the closed set of block variants. Children
// are rendered before their parent's handler runs. Unknown variants are
// reported on the trace channel and render as "".
func (r *Renderer) renderBlock(block doctree.Block, notes *Footnotes) string {
	switch b := block.(type) {
	case doctree.Plain:
		return r.Plain(r.RenderInlines(b.Inlines, notes))
	case doctree.Para:
		return r.Paragraph(r.RenderInlines(b.Inlines, notes))
	case doctree.Header:
		header := r.Header(b.Level, r.RenderInlines(b.Inlines, notes))
		if r.flags&HeaderAnchors != 0 {
			header += r.Anchor(headerAnchorName(b))
		}
		return header
	case doctree.BlockQuote:
		return r.BlockQuote(r.RenderBlocks(b.Blocks, notes))
	case doctree.HorizontalRule:
		return r.HorizontalRule()
	case doctree.LineBlock:
		lines := make([]string, len(b.Lines))
		for i, line := range b.Lines {
			lines[i] = r.RenderInlines(line, notes)
		}
		return r.LineBlock(lines)
	case doctree.CodeBlock:
		return r.renderCodeBlock(b)
	case doctree.BulletList:
		return r.BulletList(r.renderListItems(b.Items, notes))
	case doctree.OrderedList:
		return r.OrderedList(r.renderListItems(b.Items, notes))
	case doctree.DefinitionList:
		items := make([]string, 0, 2*len(b.Items))
		for _, item := range b.Items {
			items = append(items, r.RenderInlines(item.Term, notes))
			for _, definition := range item.Definitions {
				items = append(items, r.RenderBlocks(definition, notes))
			}
		}
		return r.DefinitionList(items)
	case doctree.Figure:
		caption := r.RenderInlines(b.Caption, notes)
		return r.CaptionedImage(b.Target.URL, b.Target.Title, caption, b.Attr)
	case doctree.Table:
		return r.renderTable(b, notes)
	case doctree.RawBlock:
		return r.RawBlock(b.Format, b.Text)
	case doctree.Div:
		return r.Div(r.RenderBlocks(b.Blocks, notes), b.Attr)
	default:
		tracer().Errorf("no handler for block node of type %T", block)
		return ""
	}
}

// renderInline dispatches over the closed set of inline variants.
func (r *Renderer) renderInline(inline doctree.Inline, notes *Footnotes) string {
	switch n := inline.(type) {
	case doctree.Text:
		return r.Text(n.Text)
	case doctree.Space:
		return r.Space()
	case doctree.SoftBreak:
		return r.SoftBreak()
	case doctree.LineBreak:
		return r.LineBreak()
	case doctree.Emph:
		return r.Emphasis(r.RenderInlines(n.Inlines, notes))
	case doctree.Strong:
		return r.Strong(r.RenderInlines(n.Inlines, notes))
	case doctree.Subscript:
		return r.Subscript(r.RenderInlines(n.Inlines, notes))
	case doctree.Superscript:
		return r.Superscript(r.RenderInlines(n.Inlines, notes))
	case doctree.SmallCaps:
		return r.SmallCaps(r.RenderInlines(n.Inlines, notes))
	case doctree.Strikeout:
		return r.Strikeout(r.RenderInlines(n.Inlines, notes))
	case doctree.Code:
		return r.CodeSpan(n.Text, n.Attr)
	case doctree.Math:
		return r.Math(n.Text, n.Mode)
	case doctree.Link:
		label := r.RenderInlines(n.Inlines, notes)
		return r.Link(label, n.Target.URL, n.Target.Title, n.Attr)
	case doctree.Image:
		alt := r.RenderInlines(n.Inlines, notes)
		return r.Image(alt, n.Target.URL, n.Target.Title, n.Attr)
	case doctree.Note:
		body := r.RenderBlocks(n.Blocks, notes)
		notes.Record(body)
		return r.Note(body)
	case doctree.Span:
		return r.Span(r.RenderInlines(n.Inlines, notes), n.Attr)
	case doctree.RawInline:
		return r.RawInline(n.Format, n.Text)
	case doctree.Cite:
		return r.Citation(r.RenderInlines(n.Inlines, notes))
	default:
		tracer().Errorf("no handler for inline node of type %T", inline)
		return ""
	}
}

// renderCodeBlock applies a registered external filter, if any matches
// one of the block's classes. The filter's output is embedded as an
// image target. Filter failures fall back to the literal code block; a
// broken external tool must not abort the document render.
func (r *Renderer) renderCodeBlock(b doctree.CodeBlock) string {
	if class, command, ok := r.filterFor(b.Attr); ok {
		out, err := filter.Run(command, b.Text)
		if err != nil {
			tracer().Errorf("filter for code block class %q: %v", class, err)
		} else {
			return r.Image(class, strings.TrimSpace(out), "", b.Attr)
		}
	}
	return r.CodeBlock(b.Text, b.Attr)
}

// renderListItems renders every list item into one string. Blocks within
// an item are joined like sibling blocks.
func (r *Renderer) renderListItems(items [][]doctree.Block, notes *Footnotes) []string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = r.RenderBlocks(item, notes)
	}
	return rendered
}

// renderTable renders caption and cells, then hands the strings to the
// Table handler. A cell's blocks are joined like sibling blocks.
func (r *Renderer) renderTable(t doctree.Table, notes *Footnotes) string {
	caption := r.RenderInlines(t.Caption, notes)
	headers := make([]string, len(t.Header))
	for i, cell := range t.Header {
		headers[i] = r.RenderBlocks(cell, notes)
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = r.RenderBlocks(cell, notes)
		}
		rows[i] = cells
	}
	return r.Table(caption, t.Columns, headers, rows)
}

// headerAnchorName is the name for a header's anchor macro: the header's
// id attribute if set, otherwise a slug of the header text.
func headerAnchorName(h doctree.Header) string {
	if id := h.Attr.ID(); id != "" {
		return id
	}
	return sanitized_anchor_name.Create(plainText(h.Inlines))
}

// plainText flattens inline content to bare text, for slug generation.
func plainText(inlines []doctree.Inline) string {
	var sb strings.Builder
	for _, inline := range inlines {
		switch n := inline.(type) {
		case doctree.Text:
			sb.WriteString(n.Text)
		case doctree.Space:
			sb.WriteByte(' ')
		case doctree.SoftBreak, doctree.LineBreak:
			sb.WriteByte(' ')
		case doctree.Emph:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Strong:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Subscript:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Superscript:
			sb.WriteString(plainText(n.Inlines))
		case doctree.SmallCaps:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Strikeout:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Code:
			sb.WriteString(n.Text)
		case doctree.Link:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Span:
			sb.WriteString(plainText(n.Inlines))
		case doctree.Cite:
			sb.WriteString(plainText(n.Inlines))
		}
	}
	return sb.String()
}
