package jirawiki

import (
	"github.com/npillmayer/markout/doctree"
)

// Inline handlers. Every handler receives pre-rendered child content as
// a string and returns one markup fragment. Content arguments are not
// escaped again; escaping happens once, in Text.

// Text renders a run of literal text.
func (r *Renderer) Text(s string) string {
	return r.Escape(s, false)
}

// Space renders a word space.
func (r *Renderer) Space() string {
	return " "
}

// SoftBreak renders a soft line break.
func (r *Renderer) SoftBreak() string {
	return "\n"
}

// LineBreak renders a hard line break.
func (r *Renderer) LineBreak() string {
	return "\n\n"
}

// Emphasis wraps content in underscores.
func (r *Renderer) Emphasis(content string) string {
	return "_" + content + "_"
}

// Strong wraps content in stars.
func (r *Renderer) Strong(content string) string {
	return "*" + content + "*"
}

// Subscript wraps content in tildes.
func (r *Renderer) Subscript(content string) string {
	return "~" + content + "~"
}

// Superscript wraps content in carets.
func (r *Renderer) Superscript(content string) string {
	return "^" + content + "^"
}

// SmallCaps passes content through; the dialect cannot express small
// capitals.
func (r *Renderer) SmallCaps(content string) string {
	return content
}

// Strikeout wraps content in dashes.
func (r *Renderer) Strikeout(content string) string {
	return "-" + content + "-"
}

// Link renders a hyperlink with a display label. Title and attributes
// are accepted, but the dialect has no syntax for them.
func (r *Renderer) Link(label, url, title string, attrs *doctree.Attributes) string {
	return "[" + label + "|" + url + "]"
}

// Image renders an image reference with alternative text. Title and
// attributes are accepted, but the dialect has no syntax for them.
func (r *Renderer) Image(alt, src, title string, attrs *doctree.Attributes) string {
	return "!" + alt + "|" + src + "!"
}

// CodeSpan wraps code in monospace markup. Attributes are accepted, but
// not emitted.
func (r *Renderer) CodeSpan(code string, attrs *doctree.Attributes) string {
	return "{{" + code + "}}"
}

// Math passes a TeX fragment through without delimiters, for inline and
// display mode alike.
func (r *Renderer) Math(text string, mode doctree.MathMode) string {
	return text
}

// Note returns the rendered note body unchanged. Recording the body in
// the footnote registry is the calling context's responsibility, see
// Footnotes.
func (r *Renderer) Note(body string) string {
	return body
}

// Span passes content through. Attributes are accepted, but not emitted.
func (r *Renderer) Span(content string, attrs *doctree.Attributes) string {
	return content
}

// RawInline wraps verbatim text in monospace markup, whatever format it
// declares.
func (r *Renderer) RawInline(format, text string) string {
	return "{{" + text + "}}"
}

// Citation wraps content in the dialect's citation markup.
func (r *Renderer) Citation(content string) string {
	return "??" + content + "??"
}
