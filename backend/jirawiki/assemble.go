package jirawiki

import (
	"github.com/npillmayer/cords"
	"github.com/npillmayer/markout/doctree"
)

// Footnote container markup. The container is an ordered list holding
// one entry per footnote body, with no per-entry wrapping.
const (
	footnoteListOpen  = `<ol class="footnotes">`
	footnoteListClose = `</ol>`
)

// AssembleDocument produces the final output for one document render:
// the rendered body, followed by a footnote list container if any
// footnotes were collected. Segments are joined by newlines and the
// result carries a single trailing newline. It is meant to be called
// exactly once per render, last.
//
// Metadata is accepted for callers which carry it, but not consumed;
// template substitution is a concern of the surrounding application.
func (r *Renderer) AssembleDocument(body string, footnotes []string, meta doctree.Meta) string {
	b := cords.NewBuilder()
	b.Append(fragment(body))
	if len(footnotes) > 0 {
		b.Append(fragment("\n" + footnoteListOpen))
		for _, note := range footnotes {
			b.Append(fragment("\n" + note))
		}
		b.Append(fragment("\n" + footnoteListClose))
	}
	b.Append(fragment("\n"))
	document := b.Cord()
	tracer().Debugf("assembled document with %d footnotes", len(footnotes))
	return document.String()
}

// fragment is the cord leaf type for assembled document segments.
type fragment string

// Weight of a fragment is its length in bytes.
func (f fragment) Weight() uint64 {
	return uint64(len(f))
}

func (f fragment) String() string {
	return string(f)
}

// Split splits a fragment at position i, resulting in 2 new fragments.
func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return f[:i], f[i:]
}

// Substring returns a segment of the fragment's text.
func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f[i:j])
}

var _ cords.Leaf = fragment("")
